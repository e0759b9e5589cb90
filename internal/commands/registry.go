// Copyright (c) 2025 Areeb-coder
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Areeb-coder/cli-ai-chatbot/internal/model"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ollama"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/theme"
	"github.com/Areeb-coder/cli-ai-chatbot/internal/ui"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command represents a slash command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "/help")
	Name string

	// Aliases are alternative names (e.g., "/h", "/?")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g., "/theme <name>")
	Usage string

	// Args defines the expected arguments
	Args []ArgDef

	// Handler executes the command
	Handler func(ctx *Context, args []string) error

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// ArgDef defines an argument for a command.
type ArgDef struct {
	Name        string
	Required    bool
	Type        ArgType
	Description string

	// Values for enum types, also used for completion
	Values []string
}

// ArgType indicates how an argument is validated and completed.
type ArgType int

const (
	ArgTypeString ArgType = iota // free-form string
	ArgTypeEnum                  // one of predefined values
)

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Context carries everything a handler can touch. One instance lives for
// the whole session; handlers mutate its session fields and the chat
// loop reads them back after dispatch.
type Context struct {
	Ctx context.Context

	Printer      *ui.Printer
	Engine       *theme.Engine
	Client       *ollama.Client
	Conversation *model.Conversation
	Stats        *model.SessionStats
	Registry     *Registry

	// Session state touched only by the chat loop goroutine.
	PersonaName string
	Model       string

	// Redraw, when set, repaints the welcome header after /clear.
	Redraw func()

	// Quit is set by /quit; the chat loop exits on it.
	Quit bool

	// mu guards the fields below: the config watcher goroutine updates
	// them while the chat loop reads them for the prompt and listings.
	mu        sync.RWMutex
	themeName string
	userName  string
}

// ThemeName returns the active theme name.
func (c *Context) ThemeName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.themeName
}

// SetThemeName records the active theme name.
func (c *Context) SetThemeName(name string) {
	c.mu.Lock()
	c.themeName = name
	c.mu.Unlock()
}

// UserName returns the user's display name.
func (c *Context) UserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userName
}

// SetUserName records the user's display name.
func (c *Context) SetUserName(name string) {
	c.mu.Lock()
	c.userName = name
	c.mu.Unlock()
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry creates a new command registry with all built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands, sorted by name.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// ByCategory returns visible commands grouped by category.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.All() {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// =============================================================================
// COMPLETION
// =============================================================================

// Complete returns completion candidates for a partially typed line.
// Used by the line editor's tab completion.
func (r *Registry) Complete(line string) []string {
	if !strings.HasPrefix(line, "/") {
		return nil
	}

	// Still typing the command name
	if !strings.ContainsFunc(line, unicodeIsSpace) {
		var out []string
		for name := range r.commands {
			if strings.HasPrefix(name, line) {
				out = append(out, name)
			}
		}
		for alias := range r.aliases {
			if strings.HasPrefix(alias, line) {
				out = append(out, alias)
			}
		}
		sort.Strings(out)
		return out
	}

	// Complete the first argument from its declared values
	parts := splitCommandLine(line)
	cmd := r.Get(strings.ToLower(parts[0]))
	if cmd == nil || len(cmd.Args) == 0 {
		return nil
	}

	partial := ""
	if len(parts) > 1 && !strings.HasSuffix(line, " ") {
		partial = parts[len(parts)-1]
	}

	argIdx := len(parts) - 1
	if partial != "" {
		argIdx--
	}
	if argIdx < 0 || argIdx >= len(cmd.Args) {
		return nil
	}

	var out []string
	prefix := strings.TrimSuffix(line, partial)
	for _, v := range cmd.Args[argIdx].Values {
		if strings.HasPrefix(v, partial) {
			out = append(out, prefix+v)
		}
	}
	sort.Strings(out)
	return out
}

func unicodeIsSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	r.Register(&Command{
		Name:        "/help",
		Aliases:     []string{"/h", "/?"},
		Description: "Show available commands",
		Category:    "General",
		Handler:     handleHelp,
	})

	r.Register(&Command{
		Name:        "/quit",
		Aliases:     []string{"/q", "/exit"},
		Description: "Leave the chat",
		Category:    "General",
		Handler:     handleQuit,
	})

	r.Register(&Command{
		Name:        "/clear",
		Aliases:     []string{"/c", "/cls"},
		Description: "Clear the screen (keeps the theme)",
		Category:    "General",
		Handler:     handleClear,
	})

	r.Register(&Command{
		Name:        "/new",
		Aliases:     []string{"/n", "/reset"},
		Description: "Start a fresh conversation",
		Category:    "Conversation",
		Handler:     handleNew,
	})

	r.Register(&Command{
		Name:        "/history",
		Description: "Show the conversation so far",
		Category:    "Conversation",
		Handler:     handleHistory,
	})

	r.Register(&Command{
		Name:        "/export",
		Description: "Save the conversation to a file",
		Usage:       "/export [text|markdown|json]",
		Args: []ArgDef{
			{
				Name:        "format",
				Type:        ArgTypeEnum,
				Values:      []string{"text", "markdown", "json"},
				Description: "Export format (default: text)",
			},
		},
		Category: "Conversation",
		Handler:  handleExport,
	})

	r.Register(&Command{
		Name:        "/theme",
		Aliases:     []string{"/t"},
		Description: "Switch the color theme",
		Usage:       "/theme [name|random]",
		Args: []ArgDef{
			{
				Name:        "name",
				Type:        ArgTypeEnum,
				Values:      append(theme.Names(), "random"),
				Description: "Theme name",
			},
		},
		Category: "Appearance",
		Handler:  handleTheme,
	})

	r.Register(&Command{
		Name:        "/mode",
		Aliases:     []string{"/m"},
		Description: "Switch the chat mode",
		Usage:       "/mode [name]",
		Args: []ArgDef{
			{
				Name:        "name",
				Type:        ArgTypeEnum,
				Values:      model.PersonaNames(),
				Description: "Mode name",
			},
		},
		Category: "Appearance",
		Handler:  handleMode,
	})

	r.Register(&Command{
		Name:        "/sound",
		Description: "Toggle typing sound effects",
		Usage:       "/sound on|off",
		Args: []ArgDef{
			{
				Name:        "state",
				Required:    true,
				Type:        ArgTypeEnum,
				Values:      []string{"on", "off"},
				Description: "on or off",
			},
		},
		Category: "Appearance",
		Handler:  handleSound,
	})

	r.Register(&Command{
		Name:        "/focus",
		Description: "Toggle focus mode (no animations)",
		Usage:       "/focus on|off",
		Args: []ArgDef{
			{
				Name:        "state",
				Required:    true,
				Type:        ArgTypeEnum,
				Values:      []string{"on", "off"},
				Description: "on or off",
			},
		},
		Category: "Appearance",
		Handler:  handleFocus,
	})

	r.Register(&Command{
		Name:        "/name",
		Description: "Tell nova your name",
		Usage:       "/name <your name>",
		Args: []ArgDef{
			{Name: "name", Required: true, Type: ArgTypeString, Description: "Your name"},
		},
		Category: "Session",
		Handler:  handleName,
	})

	r.Register(&Command{
		Name:        "/stats",
		Aliases:     []string{"/s"},
		Description: "Show session statistics",
		Category:    "Session",
		Handler:     handleStats,
	})

	r.Register(&Command{
		Name:        "/model",
		Description: "Show or switch the Ollama model",
		Usage:       "/model [name]",
		Args: []ArgDef{
			{Name: "name", Type: ArgTypeString, Description: "Model name"},
		},
		Category: "Session",
		Handler:  handleModel,
	})

	r.Register(&Command{
		Name:        "/models",
		Description: "List locally available models",
		Category:    "Session",
		Handler:     handleModels,
	})

	r.Register(&Command{
		Name:        "/flash",
		Description: "Flash the background with a palette color",
		Usage:       "/flash [theme]",
		Args: []ArgDef{
			{
				Name:        "theme",
				Type:        ArgTypeEnum,
				Values:      theme.Names(),
				Description: "Palette whose background to flash",
			},
		},
		Category: "Appearance",
		Handler:  handleFlash,
	})
}
