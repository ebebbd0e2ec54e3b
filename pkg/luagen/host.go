// Package luagen hosts Lua-scripted completion generators. A script obtains
// a generator table and attaches a generate method to it:
//
//	local gen = clink.generator(10)
//
//	function gen:generate(line_state, match_builder)
//	    if line_state:getword(1) ~= "mycmd" then
//	        return false
//	    end
//	    match_builder:addmatch({ match = "start", type = "word" })
//	    match_builder:addmatch("stop")
//	    return true
//	end
//
// Script generators run in ascending priority order with first-claim-wins,
// the same policy the outer chain applies across generators. A script
// generator that returns false is expected to leave the builder untouched,
// exactly like a native generator.
package luagen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/sewbacca/clink/pkg/complete"
)

// defaultPriority places generators that do not pass one after every
// explicitly prioritized generator.
const defaultPriority = 999

// scriptGenerator is one clink.generator() registration.
type scriptGenerator struct {
	priority int
	order    int
	table    *lua.LTable
}

// Host owns one Lua state and presents every generator its scripts
// registered as a single complete.Generator.
//
// The Lua state is not goroutine-safe; like the rest of the completion core,
// a Host must only be used from the editor's single completion loop.
type Host struct {
	state      *lua.LState
	logger     *zap.Logger
	generators []*scriptGenerator
}

// NewHost creates a Host with the clink scripting API registered. Close must
// be called when the host is no longer needed.
func NewHost(logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Host{
		state:  lua.NewState(),
		logger: logger,
	}
	h.registerAPI()
	return h
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.state.Close()
}

// LoadString runs src in the host's Lua state. name is used in diagnostics.
func (h *Host) LoadString(name, src string) error {
	if err := h.state.DoString(src); err != nil {
		h.logger.Error("lua script failed", zap.String("script", name), zap.Error(err))
		return fmt.Errorf("loading lua script %s: %w", name, err)
	}
	h.logger.Debug("loaded lua script", zap.String("script", name))
	return nil
}

// LoadFile runs the script at path.
func (h *Host) LoadFile(path string) error {
	if err := h.state.DoFile(path); err != nil {
		h.logger.Error("lua script failed", zap.String("script", path), zap.Error(err))
		return fmt.Errorf("loading lua script %s: %w", path, err)
	}
	h.logger.Debug("loaded lua script", zap.String("script", path))
	return nil
}

// LoadDir runs every *.lua file in dir in name order. A missing directory is
// not an error; individual script failures are logged and skipped so one bad
// script cannot take down the rest.
func (h *Host) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading script dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".lua") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		// Errors are already logged; keep loading the remaining scripts.
		_ = h.LoadFile(filepath.Join(dir, name))
	}
	return nil
}

// Generate implements complete.Generator by running the registered script
// generators in priority order until one claims the context. A script that
// errors is logged and treated as having declined.
func (h *Host) Generate(ls *complete.LineState, b *complete.Builder) bool {
	for _, g := range h.generators {
		fn := h.state.GetField(g.table, "generate")
		if fn == lua.LNil {
			continue
		}

		err := h.state.CallByParam(
			lua.P{Fn: fn, NRet: 1, Protect: true},
			g.table, h.wrapLineState(ls), h.wrapBuilder(b),
		)
		if err != nil {
			h.logger.Error("lua generator failed", zap.Error(err))
			continue
		}

		claimed := lua.LVAsBool(h.state.Get(-1))
		h.state.Pop(1)
		if claimed {
			return true
		}
	}
	return false
}

// register records a generator table created by clink.generator and keeps the
// list ordered by priority, creation order breaking ties.
func (h *Host) register(priority int, table *lua.LTable) {
	h.generators = append(h.generators, &scriptGenerator{
		priority: priority,
		order:    len(h.generators),
		table:    table,
	})
	sort.Slice(h.generators, func(i, j int) bool {
		if h.generators[i].priority != h.generators[j].priority {
			return h.generators[i].priority < h.generators[j].priority
		}
		return h.generators[i].order < h.generators[j].order
	})
}
