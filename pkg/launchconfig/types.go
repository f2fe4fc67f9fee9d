// Package launchconfig builds cppdbg launch configurations for native binaries.
package launchconfig

const (
	// ConfigName is the label the IDE shows for the generated session.
	ConfigName = "c++ launch"
	// DebuggerType selects the native debugging extension's MI backend.
	DebuggerType = "cppdbg"
	// RequestLaunch starts the program under the debugger instead of attaching.
	RequestLaunch = "launch"
	// WorkspaceFolder is expanded by the IDE to the workspace root.
	WorkspaceFolder = "${workspaceFolder}"
)

// Document is the top-level launch.json structure.
type Document struct {
	Configurations []Configuration `json:"configurations"`
}

// Configuration describes one debug session.
type Configuration struct {
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Request       string         `json:"request"`
	Args          []string       `json:"args"`
	Program       string         `json:"program"`
	Cwd           string         `json:"cwd"`
	SetupCommands []SetupCommand `json:"setupCommands,omitempty"`
}

// SetupCommand is a debugger directive executed before the program starts.
type SetupCommand struct {
	Description    string `json:"description"`
	Text           string `json:"text"`
	IgnoreFailures bool   `json:"ignoreFailures"`
}

// PrettyPrinting enables gdb pretty-printers for STL containers.
var PrettyPrinting = SetupCommand{
	Description:    "Enable pretty-printing for gdb",
	Text:           "-enable-pretty-printing",
	IgnoreFailures: true,
}

// NewDocument wraps a single configuration.
func NewDocument(cfg Configuration) Document {
	return Document{Configurations: []Configuration{cfg}}
}
