package scene

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidLinkID is returned by [Scene.AddLink] when the link ID is
	// empty. All links must have non-empty identifiers.
	ErrInvalidLinkID = errors.New("link ID must not be empty")

	// ErrDuplicateLinkID is returned by [Scene.AddLink] when a link with the
	// same ID already exists in the scene.
	ErrDuplicateLinkID = errors.New("duplicate link ID")

	// ErrUnknownLink is returned when an operation references a link ID that
	// does not exist in the scene.
	ErrUnknownLink = errors.New("unknown link")

	// ErrUnknownParent is returned by [Scene.AddLink] when the parent ID does
	// not resolve to an existing link.
	ErrUnknownParent = errors.New("unknown parent link")

	// ErrRootExists is returned by [Scene.AddLink] when a second root link
	// (empty parent ID) is added. A scene has exactly one root.
	ErrRootExists = errors.New("scene already has a root link")

	// ErrUnknownJoint is returned when a joint name does not resolve.
	ErrUnknownJoint = errors.New("unknown joint")

	// ErrNoRoot is returned by [Scene.Validate] for a non-empty scene whose
	// links all claim a parent.
	ErrNoRoot = errors.New("scene has no root link")

	// ErrMultipleRoots is returned by [Scene.Validate] when more than one
	// link has an empty parent reference.
	ErrMultipleRoots = errors.New("scene has more than one root link")

	// ErrBrokenTree is returned by [Scene.Validate] when a parent or child
	// reference does not resolve, or when a child list disagrees with the
	// referenced link's parent pointer.
	ErrBrokenTree = errors.New("parent/child references are inconsistent")

	// ErrSceneHasCycle is returned by [Scene.Validate] when the parent/child
	// graph contains a cycle. Detection uses depth-first search with
	// white/gray/black coloring.
	ErrSceneHasCycle = errors.New("scene contains a cycle")
)

// Scene is an id-keyed arena of links forming a mechanism tree, plus a
// scene-wide joint name index. The zero value is not usable - use [New].
// Scene is not safe for concurrent use without external synchronization.
type Scene struct {
	links  map[LinkID]*Link
	root   LinkID
	joints map[string]LinkID // joint name -> owning link
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		links:  make(map[LinkID]*Link),
		joints: make(map[string]LinkID),
	}
}

// GenerateID returns a fresh link ID.
func GenerateID() LinkID {
	return LinkID("link-" + shortUID())
}

func shortUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// AddLink inserts l under the given parent and takes ownership of it.
// An empty parent makes l the root. The link's joints are registered in the
// scene-wide name index; names that collide with existing joints are replaced
// with generated ones (see [Scene.AddJoint]).
//
// Returns ErrInvalidLinkID, ErrDuplicateLinkID, ErrRootExists, or
// ErrUnknownParent.
func (s *Scene) AddLink(parent LinkID, l *Link) error {
	if l.ID == "" {
		return ErrInvalidLinkID
	}
	if _, exists := s.links[l.ID]; exists {
		return ErrDuplicateLinkID
	}
	if parent == "" {
		if s.root != "" {
			return ErrRootExists
		}
		s.root = l.ID
	} else {
		p, ok := s.links[parent]
		if !ok {
			return ErrUnknownParent
		}
		p.Children = append(p.Children, l.ID)
	}
	l.Parent = parent
	l.Children = nil
	s.links[l.ID] = l
	for _, j := range l.Joints {
		j.Name = s.registerJoint(l.ID, j.Name)
	}
	return nil
}

// RemoveLink removes the link and its entire subtree, unregistering all
// joints owned by removed links. Removing the root empties the scene.
// Returns ErrUnknownLink if the ID does not resolve.
func (s *Scene) RemoveLink(id LinkID) error {
	l, ok := s.links[id]
	if !ok {
		return ErrUnknownLink
	}
	if l.Parent != "" {
		if p, ok := s.links[l.Parent]; ok {
			p.Children = slices.DeleteFunc(p.Children, func(c LinkID) bool { return c == id })
		}
	} else {
		s.root = ""
	}
	s.removeSubtree(id)
	return nil
}

func (s *Scene) removeSubtree(id LinkID) {
	l, ok := s.links[id]
	if !ok {
		return
	}
	for _, c := range l.Children {
		s.removeSubtree(c)
	}
	for _, j := range l.Joints {
		delete(s.joints, j.Name)
	}
	delete(s.links, id)
}

// Link returns the link with the given ID and true, or nil and false.
// The returned pointer refers to the scene's own link.
func (s *Scene) Link(id LinkID) (*Link, bool) {
	l, ok := s.links[id]
	return l, ok
}

// Links returns all links sorted by ID for deterministic iteration.
func (s *Scene) Links() []*Link {
	links := make([]*Link, 0, len(s.links))
	for _, l := range s.links {
		links = append(links, l)
	}
	slices.SortFunc(links, func(a, b *Link) int { return strings.Compare(string(a.ID), string(b.ID)) })
	return links
}

// Root returns the root link's ID, or "" for an empty scene.
func (s *Scene) Root() LinkID { return s.root }

// LinkCount returns the number of links in the scene.
func (s *Scene) LinkCount() int { return len(s.links) }

// Path returns the chain of link IDs from the root to id, inclusive.
// Returns ErrUnknownLink if id does not resolve.
func (s *Scene) Path(id LinkID) ([]LinkID, error) {
	l, ok := s.links[id]
	if !ok {
		return nil, ErrUnknownLink
	}
	var path []LinkID
	for steps := 0; steps <= len(s.links); steps++ {
		path = append(path, l.ID)
		if l.Parent == "" {
			slices.Reverse(path)
			return path, nil
		}
		l, ok = s.links[l.Parent]
		if !ok {
			return nil, fmt.Errorf("link %s: %w", path[len(path)-1], ErrBrokenTree)
		}
	}
	return nil, ErrSceneHasCycle
}

// AddJoint appends j to the link's joint list and registers its name.
// If the name is empty or already taken anywhere in the scene, it is replaced
// with a generated "joint-<8 hex>" name rather than rejected; the name in
// effect is returned. Returns ErrUnknownLink if the link does not resolve.
func (s *Scene) AddJoint(id LinkID, j *Joint) (string, error) {
	l, ok := s.links[id]
	if !ok {
		return "", ErrUnknownLink
	}
	j.Name = s.registerJoint(id, j.Name)
	l.Joints = append(l.Joints, j)
	return j.Name, nil
}

// registerJoint claims a unique name for a joint owned by the given link and
// records it in the index, generating a replacement on collision.
func (s *Scene) registerJoint(owner LinkID, name string) string {
	if name != "" {
		if _, taken := s.joints[name]; !taken {
			s.joints[name] = owner
			return name
		}
	}
	for {
		name = "joint-" + shortUID()
		if _, taken := s.joints[name]; !taken {
			s.joints[name] = owner
			return name
		}
	}
}

// RemoveJoint removes the named joint from its owning link, independently of
// the link itself. Returns ErrUnknownJoint if the name does not resolve.
func (s *Scene) RemoveJoint(name string) error {
	owner, ok := s.joints[name]
	if !ok {
		return ErrUnknownJoint
	}
	if l, ok := s.links[owner]; ok {
		l.Joints = slices.DeleteFunc(l.Joints, func(j *Joint) bool { return j.Name == name })
	}
	delete(s.joints, name)
	return nil
}

// Joint returns the named joint and true, or nil and false.
func (s *Scene) Joint(name string) (*Joint, bool) {
	owner, ok := s.joints[name]
	if !ok {
		return nil, false
	}
	l, ok := s.links[owner]
	if !ok {
		return nil, false
	}
	for _, j := range l.Joints {
		if j.Name == name {
			return j, true
		}
	}
	return nil, false
}

// JointOwner returns the ID of the link owning the named joint.
func (s *Scene) JointOwner(name string) (LinkID, bool) {
	owner, ok := s.joints[name]
	return owner, ok
}

// SetJointValue writes v to the named joint, clamped into its limits.
// Out-of-range values are clamped, never rejected.
// Returns ErrUnknownJoint if the name does not resolve.
func (s *Scene) SetJointValue(name string, v float64) error {
	j, ok := s.Joint(name)
	if !ok {
		return ErrUnknownJoint
	}
	j.SetValue(v)
	return nil
}

// JointValues returns a snapshot of all joint values keyed by name.
func (s *Scene) JointValues() map[string]float64 {
	values := make(map[string]float64, len(s.joints))
	for name := range s.joints {
		if j, ok := s.Joint(name); ok {
			values[name] = j.Value
		}
	}
	return values
}

// CloneAlong returns a copy of the scene in which the links named in path are
// deep-cloned and every other link is shared with the receiver. Mutating
// joints on the path links of the copy leaves the original scene untouched;
// off-path links must not be mutated through either scene.
func (s *Scene) CloneAlong(path []LinkID) *Scene {
	onPath := make(map[LinkID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	c := &Scene{
		links:  make(map[LinkID]*Link, len(s.links)),
		root:   s.root,
		joints: make(map[string]LinkID, len(s.joints)),
	}
	for id, l := range s.links {
		if onPath[id] {
			c.links[id] = l.Clone()
		} else {
			c.links[id] = l
		}
	}
	for name, owner := range s.joints {
		c.joints[name] = owner
	}
	return c
}

// Validate checks scene integrity and returns nil if valid.
// It verifies that a non-empty scene has exactly one root, that every parent
// and child reference resolves and both directions agree, and that the
// parent/child graph is acyclic.
//
// Returns ErrNoRoot, ErrMultipleRoots, ErrBrokenTree, or ErrSceneHasCycle.
// Validate is intended for construction/mutation boundaries; traversals
// assume a valid tree.
func (s *Scene) Validate() error {
	if len(s.links) == 0 {
		return nil
	}
	if err := s.validateRefs(); err != nil {
		return err
	}
	return s.detectCycles()
}

func (s *Scene) validateRefs() error {
	roots := 0
	for id, l := range s.links {
		if l.Parent == "" {
			roots++
			if s.root != id {
				return fmt.Errorf("link %s: %w", id, ErrBrokenTree)
			}
		} else {
			p, ok := s.links[l.Parent]
			if !ok {
				return fmt.Errorf("link %s: %w", id, ErrBrokenTree)
			}
			if !slices.Contains(p.Children, id) {
				return fmt.Errorf("link %s: %w", id, ErrBrokenTree)
			}
		}
		for _, c := range l.Children {
			child, ok := s.links[c]
			if !ok || child.Parent != id {
				return fmt.Errorf("link %s: %w", id, ErrBrokenTree)
			}
		}
	}
	if roots == 0 {
		return ErrNoRoot
	}
	if roots > 1 {
		return ErrMultipleRoots
	}
	return nil
}

func (s *Scene) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[LinkID]int, len(s.links))
	var hasCycle bool

	var dfs func(id LinkID)
	dfs = func(id LinkID) {
		color[id] = gray
		for _, child := range s.links[id].Children {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	dfs(s.root)
	if hasCycle {
		return ErrSceneHasCycle
	}
	for id := range s.links {
		if color[id] == white {
			return fmt.Errorf("link %s unreachable from root: %w", id, ErrBrokenTree)
		}
	}
	return nil
}
