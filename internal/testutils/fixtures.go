package testutils

import "github.com/llfsmgen/llfsmgen/pkg/domain"

func ptr[T any](v T) *T { return &v }

// Machine0Model is a two state machine that copies an input to an output.
func Machine0Model() domain.MachineModel {
	return domain.MachineModel{
		States: []domain.StateModel{
			{
				Name:              "Initial",
				Variables:         "signal InitialX: std_logic;",
				ExternalVariables: "x\ny",
				Actions: []domain.ActionModel{
					{Name: "OnEntry", Code: "InitialX <= x and machineX;"},
					{Name: "OnExit", Code: "y <= InitialX;"},
				},
				Layout: domain.StateLayout{
					Position:   domain.Point2D{X: 0, Y: 0},
					Dimensions: domain.Point2D{X: 200, Y: 100},
				},
			},
			{
				Name:              "Finished",
				Variables:         "",
				ExternalVariables: "",
				Actions:           []domain.ActionModel{},
				Layout: domain.StateLayout{
					Position:   domain.Point2D{X: 0, Y: 300},
					Dimensions: domain.Point2D{X: 200, Y: 100},
				},
			},
		},
		ExternalVariables: "x: in std_logic;\ny: out std_logic;",
		MachineVariables:  "signal machineX: std_logic;",
		Includes:          "library IEEE;\nuse IEEE.std_logic_1164.all;\nuse IEEE.math_real.all;",
		Transitions: []domain.TransitionModel{
			{
				Source:    "Initial",
				Target:    "Finished",
				Condition: "true",
				Layout: domain.TransitionLayout{Path: domain.BezierPath{
					Source:   domain.Point2D{X: 100, Y: 100},
					Target:   domain.Point2D{X: 100, Y: 300},
					Control0: domain.Point2D{X: 100, Y: 175},
					Control1: domain.Point2D{X: 100, Y: 250},
				}},
			},
		},
		InitialState:   "Initial",
		SuspendedState: nil,
		Clocks:         []domain.ClockModel{{Name: "clk", Frequency: "50 MHz"}},
	}
}

// PingMachineModel raises ping and waits for pong before pinging again.
func PingMachineModel() domain.MachineModel {
	layout := func(y float64) domain.StateLayout {
		return domain.StateLayout{Position: domain.Point2D{X: 0, Y: y}, Dimensions: domain.Point2D{X: 200, Y: 100}}
	}
	return domain.MachineModel{
		States: []domain.StateModel{
			{
				Name:    "Initial",
				Actions: []domain.ActionModel{},
				Layout:  layout(0),
			},
			{
				Name:              "SendPing",
				ExternalVariables: "ping",
				Actions: []domain.ActionModel{
					{Name: "OnExit", Code: "ping <= '1';"},
				},
				Layout: layout(200),
			},
			{
				Name:              "WaitForPong",
				ExternalVariables: "ping\npong",
				Actions: []domain.ActionModel{
					{Name: "Internal", Code: "ping <= '0';"},
					{Name: "OnEntry", Code: "ping <= '0';"},
				},
				Layout: layout(400),
			},
		},
		ExternalVariables: "ping: out std_logic;\npong: in std_logic;",
		Includes:          "library IEEE;\nuse IEEE.std_logic_1164.all;",
		Transitions: []domain.TransitionModel{
			{Source: "Initial", Target: "SendPing", Condition: "true"},
			{Source: "SendPing", Target: "WaitForPong", Condition: "true"},
			{Source: "WaitForPong", Target: "SendPing", Condition: "pong = '1'"},
		},
		InitialState: "Initial",
		Clocks:       []domain.ClockModel{{Name: "clk", Frequency: "5 MHz"}},
	}
}

// PongMachineModel answers every ping with a pong.
func PongMachineModel() domain.MachineModel {
	return domain.MachineModel{
		States: []domain.StateModel{
			{
				Name:              "WaitForPing",
				ExternalVariables: "pong",
				Actions: []domain.ActionModel{
					{Name: "OnEntry", Code: "pong <= '0';"},
				},
			},
			{
				Name:              "SendPong",
				ExternalVariables: "pong",
				Actions: []domain.ActionModel{
					{Name: "OnEntry", Code: "pong <= '1';"},
				},
			},
		},
		ExternalVariables: "ping: in std_logic;\npong: out std_logic;",
		Includes:          "library IEEE;\nuse IEEE.std_logic_1164.all;",
		Transitions: []domain.TransitionModel{
			{Source: "WaitForPing", Target: "SendPong", Condition: "ping = '1'"},
			{Source: "SendPong", Target: "WaitForPing", Condition: "true"},
		},
		InitialState:   "WaitForPing",
		SuspendedState: ptr("WaitForPing"),
		Clocks:         []domain.ClockModel{{Name: "clk", Frequency: "5 MHz"}},
	}
}

// PingPongArrangementModel wires a ping machine to a pong machine through
// shared signals. The machine paths are relative to the arrangement folder.
func PingPongArrangementModel() domain.ArrangementModel {
	return domain.ArrangementModel{
		ExternalVariables: "",
		GlobalVariables:   "signal ping: std_logic;\nsignal pong: std_logic;",
		Clocks:            []domain.ClockModel{{Name: "clk", Frequency: "5 MHz"}},
		Machines: []domain.MachineReference{
			{Name: "PingMachine", Path: "../PingMachine.machine"},
			{Name: "PongMachine", Path: "../PongMachine.machine"},
		},
	}
}
