package luagen

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/sewbacca/clink/pkg/complete"
)

const (
	lineStateTypeName = "clink.linestate"
	builderTypeName   = "clink.matchbuilder"
)

// registerAPI installs the global clink table and the userdata metatables the
// generate callbacks receive.
func (h *Host) registerAPI() {
	L := h.state

	mod := L.NewTable()
	L.SetField(mod, "generator", L.NewFunction(h.luaGenerator))
	L.SetGlobal("clink", mod)

	lsMeta := L.NewTypeMetatable(lineStateTypeName)
	L.SetField(lsMeta, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"getword":      lsGetWord,
		"getwordcount": lsGetWordCount,
		"getendword":   lsGetEndWord,
		"getline":      lsGetLine,
		"getcursor":    lsGetCursor,
	}))

	mbMeta := L.NewTypeMetatable(builderTypeName)
	L.SetField(mbMeta, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"addmatch":          mbAddMatch,
		"setprefixincluded": mbSetPrefixIncluded,
	}))
}

// luaGenerator implements clink.generator(priority) -> table.
func (h *Host) luaGenerator(L *lua.LState) int {
	priority := L.OptInt(1, defaultPriority)
	table := L.NewTable()
	h.register(priority, table)
	L.Push(table)
	return 1
}

func (h *Host) wrapLineState(ls *complete.LineState) *lua.LUserData {
	ud := h.state.NewUserData()
	ud.Value = ls
	h.state.SetMetatable(ud, h.state.GetTypeMetatable(lineStateTypeName))
	return ud
}

func (h *Host) wrapBuilder(b *complete.Builder) *lua.LUserData {
	ud := h.state.NewUserData()
	ud.Value = b
	h.state.SetMetatable(ud, h.state.GetTypeMetatable(builderTypeName))
	return ud
}

func checkLineState(L *lua.LState) *complete.LineState {
	ud := L.CheckUserData(1)
	if ls, ok := ud.Value.(*complete.LineState); ok {
		return ls
	}
	L.ArgError(1, "line state expected")
	return nil
}

func checkBuilder(L *lua.LState) *complete.Builder {
	ud := L.CheckUserData(1)
	if b, ok := ud.Value.(*complete.Builder); ok {
		return b
	}
	L.ArgError(1, "match builder expected")
	return nil
}

// lsGetWord implements line_state:getword(i). Indices are 1-based; out of
// range yields "".
func lsGetWord(L *lua.LState) int {
	ls := checkLineState(L)
	i := L.CheckInt(2)
	L.Push(lua.LString(ls.Word(i - 1).Text))
	return 1
}

func lsGetWordCount(L *lua.LState) int {
	L.Push(lua.LNumber(checkLineState(L).WordCount()))
	return 1
}

func lsGetEndWord(L *lua.LState) int {
	L.Push(lua.LString(checkLineState(L).EndWord().Text))
	return 1
}

func lsGetLine(L *lua.LState) int {
	L.Push(lua.LString(checkLineState(L).Line()))
	return 1
}

// lsGetCursor returns the 1-based cursor position, Lua-style.
func lsGetCursor(L *lua.LState) int {
	L.Push(lua.LNumber(checkLineState(L).Cursor() + 1))
	return 1
}

// mbAddMatch implements match_builder:addmatch(match). The argument is either
// a plain string (typed word) or a table { match = text, type = "word" |
// "file" | "dir" }. It reports whether the match was stored; a match dropped
// by the builder's class lock yields false.
func mbAddMatch(L *lua.LState) int {
	b := checkBuilder(L)

	var m complete.Match
	switch v := L.CheckAny(2).(type) {
	case lua.LString:
		m = complete.Match{Text: string(v), Kind: complete.MatchWord}
	case *lua.LTable:
		m = complete.Match{
			Text: lua.LVAsString(L.GetField(v, "match")),
			Kind: matchTypeFromString(lua.LVAsString(L.GetField(v, "type"))),
		}
	default:
		L.ArgError(2, "string or match table expected")
	}

	L.Push(lua.LBool(b.Add(m)))
	return 1
}

// mbSetPrefixIncluded implements match_builder:setprefixincluded([state]).
// Called without an argument it sets the flag.
func mbSetPrefixIncluded(L *lua.LState) int {
	state := true
	if L.GetTop() >= 2 {
		state = lua.LVAsBool(L.Get(2))
	}
	checkBuilder(L).SetPrefixIncluded(state)
	return 0
}

// matchTypeFromString maps the scripting API's type names onto MatchType.
// Unknown or missing names mean a plain word.
func matchTypeFromString(s string) complete.MatchType {
	switch s {
	case "file":
		return complete.MatchFile
	case "dir":
		return complete.MatchDir
	default:
		return complete.MatchWord
	}
}
