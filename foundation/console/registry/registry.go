// File: registry.go
// Title: Console Command Registry
// Description: RWMutex guarded name -> command table with aliases, per
//              argument completion candidates and fuzzy suggestions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/msto63/devconsole/foundation/console/command"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

// DefaultNumSuggestions is used when Options.NumSuggestions is zero
const DefaultNumSuggestions = 4

// Options configures a registry
type Options struct {
	Logger         *mdwlog.Logger
	NumSuggestions int
}

// Registry stores the console's commands
type Registry struct {
	commands    map[string]command.Command
	aliases     map[string]string
	suggestions map[string][][]string
	logger      *mdwlog.Logger
	mutex       sync.RWMutex
	options     Options
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.NumSuggestions <= 0 {
		opts.NumSuggestions = DefaultNumSuggestions
	}

	return &Registry{
		commands:    make(map[string]command.Command),
		aliases:     make(map[string]string),
		suggestions: make(map[string][][]string),
		logger:      opts.Logger.WithName("console-registry"),
		options:     opts,
	}
}

// Register adds cmd. Registering a name twice, or a name already used as
// an alias, fails with CodeDuplicateCommand.
func (r *Registry) Register(cmd command.Command) error {
	return r.RegisterWithSuggestions(cmd)
}

// RegisterWithSuggestions adds cmd together with completion candidates.
// suggestions[i] lists the candidates offered for argument i.
func (r *Registry) RegisterWithSuggestions(cmd command.Command, suggestions ...[]string) error {
	if cmd == nil {
		err := mdwerror.New("command cannot be nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithSeverity(mdwerror.SeverityHigh).
			WithOperation("registry.Register")
		r.logger.LogError(err)
		return err
	}

	info := cmd.Info()
	if !command.IsValidName(info.Name) {
		err := mdwerror.Newf("invalid command name '%s'", info.Name).
			WithCode(mdwerror.CodeInvalidInput).
			WithSeverity(mdwerror.SeverityHigh).
			WithOperation("registry.Register").
			WithDetail("command", info.Name)
		r.logger.LogError(err)
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[info.Name]; exists {
		return r.duplicate(info.Name, "command")
	}
	if _, exists := r.aliases[info.Name]; exists {
		return r.duplicate(info.Name, "alias")
	}

	r.commands[info.Name] = cmd
	if len(suggestions) > 0 {
		r.suggestions[info.Name] = copyLists(suggestions)
	}

	r.logger.Info("Command registered", mdwlog.Fields{
		"command":   info.Name,
		"argCount":  len(info.Args),
		"minArgs":   info.MinArgs(),
		"completes": len(suggestions),
	})
	return nil
}

func (r *Registry) duplicate(name, kind string) error {
	err := mdwerror.Newf("%s '%s' is already registered", kind, name).
		WithCode(mdwerror.CodeDuplicateCommand).
		WithOperation("registry.Register").
		WithDetail("command", name)
	r.logger.LogError(err)
	return err
}

// MustRegister registers every command and panics on the first failure
func (r *Registry) MustRegister(cmds ...command.Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// RegisterAlias makes alias resolve to the registered command name
func (r *Registry) RegisterAlias(alias, name string) error {
	if !command.IsValidName(alias) {
		return mdwerror.Newf("invalid alias name '%s'", alias).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("registry.RegisterAlias")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[name]; !exists {
		return mdwerror.Newf("command '%s' does not exist", name).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("registry.RegisterAlias").
			WithDetail("alias", alias)
	}
	if _, exists := r.commands[alias]; exists {
		return mdwerror.Newf("alias '%s' shadows a command", alias).
			WithCode(mdwerror.CodeDuplicateCommand).
			WithOperation("registry.RegisterAlias")
	}
	if prev, exists := r.aliases[alias]; exists && prev != name {
		r.logger.Warn("Alias overwritten", mdwlog.Fields{
			"alias":    alias,
			"previous": prev,
			"command":  name,
		})
	}

	r.aliases[alias] = name

	r.logger.Debug("Alias registered", mdwlog.Fields{
		"alias":   alias,
		"command": name,
	})
	return nil
}

// Resolve returns the command name an alias stands for, or name itself
func (r *Registry) Resolve(name string) string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.resolve(name)
}

func (r *Registry) resolve(name string) string {
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}

// Lookup finds a command by name or alias
func (r *Registry) Lookup(name string) (command.Command, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cmd, ok := r.commands[r.resolve(name)]
	return cmd, ok
}

// Has reports whether name or an alias of that name is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.commands)
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.names()
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Infos returns the metadata of every command, sorted by name
func (r *Registry) Infos() []command.Info {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := r.names()
	infos := make([]command.Info, len(names))
	for i, name := range names {
		infos[i] = r.commands[name].Info()
	}
	return infos
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// Suggest returns up to NumSuggestions registered names close to name.
// Names containing the input as a fuzzy subsequence rank first, followed
// by names within a small edit distance.
func (r *Registry) Suggest(name string) []string {
	if name == "" {
		return nil
	}

	r.mutex.RLock()
	candidates := r.names()
	for alias := range r.aliases {
		candidates = append(candidates, alias)
	}
	r.mutex.RUnlock()

	type scored struct {
		name     string
		edited   bool
		distance int
	}
	var list []scored
	matched := make(map[string]bool)
	for _, rank := range fuzzy.RankFindFold(name, candidates) {
		matched[rank.Target] = true
		list = append(list, scored{name: rank.Target, distance: rank.Distance})
	}

	maxEdits := 2
	if n := len(name) / 3; n > maxEdits {
		maxEdits = n
	}
	lower := strings.ToLower(name)
	for _, c := range candidates {
		if matched[c] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c)); d <= maxEdits {
			list = append(list, scored{name: c, edited: true, distance: d})
		}
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].edited != list[j].edited {
			return !list[i].edited
		}
		if list[i].distance != list[j].distance {
			return list[i].distance < list[j].distance
		}
		return list[i].name < list[j].name
	})

	out := make([]string, 0, r.options.NumSuggestions)
	for _, s := range list {
		if len(out) == r.options.NumSuggestions {
			break
		}
		out = append(out, s.name)
	}
	return out
}

// argSuggestions returns the completion candidates of argument pos
func (r *Registry) argSuggestions(name string, pos int) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	lists := r.suggestions[r.resolve(name)]
	if pos < 0 || pos >= len(lists) {
		return nil
	}
	return lists[pos]
}

func copyLists(lists [][]string) [][]string {
	out := make([][]string, len(lists))
	for i, l := range lists {
		out[i] = append([]string(nil), l...)
	}
	return out
}
