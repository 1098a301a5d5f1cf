// Package office maps template names to office application kinds and
// resolves the per-application template directory on the host.
package office

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Kind identifies the office application a template belongs to.
type Kind int

const (
	Word Kind = iota
	Spreadsheet
	Presentation
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Spreadsheet:
		return "spreadsheet"
	case Presentation:
		return "presentation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Kinds lists all supported application kinds.
func Kinds() []Kind {
	return []Kind{Word, Spreadsheet, Presentation}
}

// ParseKind parses a kind name as used in config files.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "word":
		return Word, nil
	case "spreadsheet":
		return Spreadsheet, nil
	case "presentation":
		return Presentation, nil
	default:
		return 0, fmt.Errorf("unknown application kind '%s' — must be one of: word, spreadsheet, presentation", s)
	}
}

// extensionKinds maps supported template extensions to application kinds.
// Every supported extension maps to exactly one kind.
var extensionKinds = map[string]Kind{
	".dotx": Word,
	".xltx": Spreadsheet,
	".potx": Presentation,
}

// Extensions returns the supported template extensions.
func Extensions() []string {
	return []string{".dotx", ".xltx", ".potx"}
}

// KindForTemplate derives the application kind from a template name's
// extension. The comparison is case-insensitive.
func KindForTemplate(name string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	kind, ok := extensionKinds[ext]
	if !ok {
		return 0, &UnsupportedExtensionError{Name: name, Ext: ext}
	}
	return kind, nil
}

// UnsupportedExtensionError reports a template name whose extension does
// not map to any known application kind.
type UnsupportedExtensionError struct {
	Name string
	Ext  string
}

func (e *UnsupportedExtensionError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("template '%s' has no extension — supported extensions: %s", e.Name, strings.Join(Extensions(), ", "))
	}
	return fmt.Sprintf("template '%s' has unsupported extension '%s' — supported extensions: %s", e.Name, e.Ext, strings.Join(Extensions(), ", "))
}

// ResolutionError reports a failure to determine the template directory
// for an application kind.
type ResolutionError struct {
	Kind Kind
	Err  error
	Hint string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("resolving %s template directory: %s", e.Kind, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// PathResolver resolves the base template directory for an application kind.
// Implementations must be idempotent and side-effect-free.
type PathResolver interface {
	Resolve(kind Kind) (string, error)
}

// UserDirResolver resolves kinds to the current user's template directories
// using platform conventions, with optional per-kind overrides.
type UserDirResolver struct {
	overrides map[Kind]string
}

// NewUserDirResolver creates a UserDirResolver. Overrides take precedence
// over the platform defaults and may cover any subset of kinds.
func NewUserDirResolver(overrides map[Kind]string) *UserDirResolver {
	o := make(map[Kind]string, len(overrides))
	for k, dir := range overrides {
		o[k] = dir
	}
	return &UserDirResolver{overrides: o}
}

// Resolve returns the base template directory for the given kind.
func (r *UserDirResolver) Resolve(kind Kind) (string, error) {
	switch kind {
	case Word, Spreadsheet, Presentation:
	default:
		return "", &ResolutionError{Kind: kind, Err: fmt.Errorf("unrecognized application kind")}
	}

	if dir, ok := r.overrides[kind]; ok {
		return dir, nil
	}

	dir, err := defaultTemplatesDir()
	if err != nil {
		return "", &ResolutionError{
			Kind: kind,
			Err:  err,
			Hint: fmt.Sprintf("set an explicit directory for '%s' in the config", kind),
		}
	}
	return dir, nil
}

// defaultTemplatesDir returns the platform's user template directory.
// All application kinds share one directory on every supported platform.
func defaultTemplatesDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Microsoft", "Templates"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating user profile: %w", err)
		}
		return filepath.Join(home, "AppData", "Roaming", "Microsoft", "Templates"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Group Containers", "UBF8T346G9.Office", "User Content", "Templates"), nil
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "templates"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", "templates"), nil
	}
}
