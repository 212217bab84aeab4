// Package scene holds the geometry and scene graph records assembled
// from kane files.
package scene

import "fmt"

type Vec2 [2]float32
type Vec3 [3]float32

// Mat4 is a column-major 4x4 matrix. It is stored, not computed on.
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

type Vertex struct {
	Position Vec3
	Normal   Vec3
	TexCoord Vec2
}

type Mesh struct {
	Name     string
	Vertices []Vertex
}

type NodeKind int

const (
	RootNode NodeKind = iota
	GroupNode
	MeshNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "root"
	case GroupNode:
		return "group"
	case MeshNode:
		return "mesh"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is an element of the scene graph. Mesh is set only for MeshNode.
type Node struct {
	Kind     NodeKind
	Mesh     *Mesh
	Children []*Node
	Local    Mat4
	World    Mat4
}

// NewNode returns a node with identity transforms.
func NewNode(kind NodeKind, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Children: children,
		Local:    Identity(),
		World:    Identity(),
	}
}

// NewMeshNode returns a leaf node referring to m.
func NewMeshNode(m *Mesh) *Node {
	n := NewNode(MeshNode)
	n.Mesh = m
	return n
}

// Walk visits n and its descendants depth first, parents before
// children. Returning false from f skips the children of that node.
func (n *Node) Walk(f func(n *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if !f(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(f, depth+1)
	}
}

// Meshes returns the meshes referenced under n in walk order.
func (n *Node) Meshes() []*Mesh {
	var res []*Mesh
	n.Walk(func(c *Node, _ int) bool {
		if c.Kind == MeshNode && c.Mesh != nil {
			res = append(res, c.Mesh)
		}
		return true
	})
	return res
}

// Pair is a key and value used to build a Cache.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// Cache maps names to loaded resources.
type Cache[K comparable, V any] map[K]V

// CacheFromPairs builds a Cache; later pairs win on duplicate keys.
func CacheFromPairs[K comparable, V any](pairs ...Pair[K, V]) Cache[K, V] {
	c := make(Cache[K, V], len(pairs))
	for _, p := range pairs {
		c[p.Key] = p.Val
	}
	return c
}
