package preview

import "github.com/gogpu/preview/render"

// fakeSpawner is an in-memory Spawner with manually controlled readiness.
type fakeSpawner struct {
	next      InstanceID
	scenes    map[InstanceID]SceneID
	ready     map[InstanceID]bool
	spawns    map[SceneID]int
	despawned []InstanceID
	objects   map[InstanceID][]ObjectRef
}

func newFakeSpawner() *fakeSpawner {
	return &fakeSpawner{
		scenes:  make(map[InstanceID]SceneID),
		ready:   make(map[InstanceID]bool),
		spawns:  make(map[SceneID]int),
		objects: make(map[InstanceID][]ObjectRef),
	}
}

func (sp *fakeSpawner) Spawn(id SceneID) InstanceID {
	sp.next++
	inst := sp.next
	sp.scenes[inst] = id
	sp.spawns[id]++
	sp.objects[inst] = []ObjectRef{
		ObjectRef(uint64(inst)*100 + 1),
		ObjectRef(uint64(inst)*100 + 2),
	}
	return inst
}

func (sp *fakeSpawner) IsReady(inst InstanceID) bool {
	return sp.ready[inst]
}

func (sp *fakeSpawner) Despawn(inst InstanceID) {
	sp.despawned = append(sp.despawned, inst)
	delete(sp.scenes, inst)
	delete(sp.ready, inst)
	delete(sp.objects, inst)
}

func (sp *fakeSpawner) ForEachObject(inst InstanceID, fn func(ObjectRef)) {
	for _, obj := range sp.objects[inst] {
		fn(obj)
	}
}

// setAllReady marks every live instance as structurally ready.
func (sp *fakeSpawner) setAllReady() {
	for inst := range sp.scenes {
		sp.ready[inst] = true
	}
}

// fakeStage records rig creation, removal, and layer tagging.
type fakeStage struct {
	next     StageRef
	cameras  map[StageRef]int // ref -> layer
	lights   map[StageRef]int
	targets  map[StageRef]render.Target // camera ref -> bound target
	tagged   map[ObjectRef]int          // obj -> last layer set
	tagCalls int
}

func newFakeStage() *fakeStage {
	return &fakeStage{
		cameras: make(map[StageRef]int),
		lights:  make(map[StageRef]int),
		targets: make(map[StageRef]render.Target),
		tagged:  make(map[ObjectRef]int),
	}
}

func (st *fakeStage) AddCamera(layer int, target render.Target) StageRef {
	st.next++
	st.cameras[st.next] = layer
	st.targets[st.next] = target
	return st.next
}

func (st *fakeStage) AddLight(layer int) StageRef {
	st.next++
	st.lights[st.next] = layer
	return st.next
}

func (st *fakeStage) Remove(ref StageRef) {
	delete(st.cameras, ref)
	delete(st.lights, ref)
	delete(st.targets, ref)
}

func (st *fakeStage) SetLayer(obj ObjectRef, layer int) {
	st.tagged[obj] = layer
	st.tagCalls++
}

// liveRigs returns the number of cameras and lights currently on the stage.
func (st *fakeStage) liveRigs() int {
	return len(st.cameras) + len(st.lights)
}

// Compile-time interface checks.
var (
	_ Spawner = (*fakeSpawner)(nil)
	_ Stage   = (*fakeStage)(nil)
)
