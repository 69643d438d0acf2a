package migraine

import (
	"fmt"
	"maps"
	"slices"
)

type ScopeID int

// NoScope is the parent of the root frame.
const NoScope ScopeID = -1

// Scopes is a stack-disciplined arena of variable frames. Frames refer to their parent by index.
type Scopes struct {
	frames []frame
	gen    uint64
}

type frame struct {
	parent ScopeID
	gen    uint64
	vars   map[string]float64
}

func NewScopes() *Scopes {
	s := &Scopes{}
	s.push(NoScope)
	return s
}

func (s *Scopes) push(parent ScopeID) Scope {
	s.gen++
	s.frames = append(s.frames, frame{
		parent: parent,
		gen:    s.gen,
		vars:   make(map[string]float64),
	})
	return Scope{
		scopes: s,
		id:     ScopeID(len(s.frames) - 1),
		gen:    s.gen,
	}
}

func (s *Scopes) Root() Scope {
	return Scope{
		scopes: s,
		id:     0,
		gen:    s.frames[0].gen,
	}
}

// Depth returns the number of live frames.
func (s *Scopes) Depth() int {
	return len(s.frames)
}

// Scope is a handle to a frame in a Scopes arena. A handle becomes invalid when its frame is popped.
type Scope struct {
	scopes *Scopes
	id     ScopeID
	gen    uint64
}

func (s Scope) ID() ScopeID {
	return s.id
}

func (s Scope) Valid() bool {
	return s.scopes != nil &&
		s.id >= 0 &&
		int(s.id) < len(s.scopes.frames) &&
		s.scopes.frames[s.id].gen == s.gen
}

func (s Scope) frame() *frame {
	if !s.Valid() {
		panic(fmt.Errorf("scope %d is no longer live", s.id))
	}
	return &s.scopes.frames[s.id]
}

// Push creates a child frame of s.
func (s Scope) Push() Scope {
	s.frame()
	return s.scopes.push(s.id)
}

// Pop releases the frame. It must be the innermost live frame and not the root.
func (s Scope) Pop() {
	s.frame()
	if s.id == 0 {
		panic(fmt.Errorf("cannot pop root scope"))
	}
	if int(s.id) != len(s.scopes.frames)-1 {
		panic(fmt.Errorf("scope %d is not the innermost scope", s.id))
	}
	s.scopes.frames[s.id] = frame{}
	s.scopes.frames = s.scopes.frames[:s.id]
}

func (s Scope) Parent() (Scope, bool) {
	f := s.frame()
	if f.parent == NoScope {
		return Scope{}, false
	}
	return Scope{
		scopes: s.scopes,
		id:     f.parent,
		gen:    s.scopes.frames[f.parent].gen,
	}, true
}

// Assign overwrites the nearest existing binding of name, or defines it in s if no frame binds it.
func (s Scope) Assign(name string, value float64) {
	s.frame()
	for id := s.id; id != NoScope; id = s.scopes.frames[id].parent {
		f := s.scopes.frames[id]
		if _, ok := f.vars[name]; ok {
			f.vars[name] = value
			return
		}
	}
	s.Define(name, value)
}

// Define binds name in s regardless of bindings in ancestors.
func (s Scope) Define(name string, value float64) {
	s.frame().vars[name] = value
}

func (s Scope) Resolve(name string) (float64, error) {
	s.frame()
	for id := s.id; id != NoScope; id = s.scopes.frames[id].parent {
		if value, ok := s.scopes.frames[id].vars[name]; ok {
			return value, nil
		}
	}
	return 0, &UndefinedIdentifier{
		Name: name,
	}
}

func (s Scope) Defines(name string) bool {
	_, ok := s.frame().vars[name]
	return ok
}

func (s Scope) Resolves(name string) bool {
	_, err := s.Resolve(name)
	return err == nil
}

// Names returns the names bound directly in s, sorted.
func (s Scope) Names() []string {
	return slices.Sorted(maps.Keys(s.frame().vars))
}
