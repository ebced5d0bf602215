package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// LoadGLTF opens a .glb or .gltf file and returns one mesh Primitive per
// glTF mesh primitive, its Bounds already expressed in world space by
// walking the node hierarchy's translation/rotation/scale transforms. Unlike
// a renderer's loader this does not touch materials or textures: the only
// thing the tree ever needs from the file is a world-space AABB per mesh.
func LoadGLTF(path string) ([]*Primitive, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	localMats := make([]types.Mat4, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		t := gn.TranslationOrDefault()
		r := gn.RotationOrDefault() // [x, y, z, w]
		s := gn.ScaleOrDefault()
		localMats[i] = localTransform(
			types.XYZ(float32(t[0]), float32(t[1]), float32(t[2])),
			types.Quat{V: types.XYZ(float32(r[0]), float32(r[1]), float32(r[2])), W: float32(r[3])},
			types.XYZ(float32(s[0]), float32(s[1]), float32(s[2])),
		)
	}

	worldMats := make([]types.Mat4, len(doc.Nodes))
	var computeWorld func(idx int, parent types.Mat4)
	computeWorld = func(idx int, parent types.Mat4) {
		world := parent.Mul4(localMats[idx])
		worldMats[idx] = world
		for _, child := range doc.Nodes[idx].Children {
			computeWorld(int(child), world)
		}
	}

	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			hasParent[c] = true
		}
	}
	for i := range doc.Nodes {
		if !hasParent[i] {
			computeWorld(i, types.Ident4())
		}
	}

	var primitives []*Primitive
	for ni, gn := range doc.Nodes {
		if gn.Mesh == nil {
			continue
		}
		mesh := doc.Meshes[*gn.Mesh]
		for pi, prim := range mesh.Primitives {
			name := fmt.Sprintf("%s_mesh%d_prim%d", nodeName(gn, ni), *gn.Mesh, pi)
			p, err := loadGLTFMeshPrimitive(doc, name, *prim, worldMats[ni])
			if err != nil {
				return nil, fmt.Errorf("gltf %s: %w", name, err)
			}
			primitives = append(primitives, p)
		}
	}
	return primitives, nil
}

func nodeName(gn *gltf.Node, idx int) string {
	if gn.Name != "" {
		return gn.Name
	}
	return fmt.Sprintf("node%d", idx)
}

// localTransform composes a node's local TRS fields into the matrix that
// maps its local-space points into its parent's space: translate(rotate(scale(p))).
func localTransform(translation types.Vec3, rotation types.Quat, scale types.Vec3) types.Mat4 {
	s := types.Ident4()
	s[0], s[5], s[10] = scale[0], scale[1], scale[2]

	r := rotation.Mat4()

	t := types.Ident4()
	t[3], t[7], t[11] = translation[0], translation[1], translation[2]

	return t.Mul4(r.Mul4(s))
}

// loadGLTFMeshPrimitive reads a mesh primitive's POSITION accessor and
// returns a mesh Primitive whose Bounds encloses every vertex transformed by
// worldMat.
func loadGLTFMeshPrimitive(doc *gltf.Document, name string, prim gltf.Primitive, worldMat types.Mat4) (*Primitive, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("empty position accessor")
	}

	points := make([]types.Vec3, len(positions))
	for i, p := range positions {
		points[i] = worldMat.MulPoint3(types.XYZ(p[0], p[1], p[2]))
	}

	return NewMesh(name, geom.NewAabbFromPoints(points)), nil
}
