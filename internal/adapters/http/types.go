package http

type modelRequest struct {
	Path        string `json:"path"`
	ExportModel bool   `json:"exportModel"`
}

type vhdlRequest struct {
	Path                   string `json:"path"`
	IncludeKripkeStructure bool   `json:"includeKripkeStructure"`
}

type cleanRequest struct {
	Path            string `json:"path"`
	BuildFolderOnly bool   `json:"buildFolderOnly"`
}

type installRequest struct {
	Path        string `json:"path"`
	InstallPath string `json:"installPath"`
	Vivado      bool   `json:"vivado"`
}

type graphRequest struct {
	Path        string `json:"path"`
	IsMachine   bool   `json:"isMachine"`
	Destination string `json:"destination"`
	Format      string `json:"format"`
}

type graphResponse struct {
	File string `json:"file"`
}

type errorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}
