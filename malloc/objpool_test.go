package malloc

import "testing"

import "github.com/bnclabs/goseq/api"
import s "github.com/bnclabs/gosettings"

type tnode struct {
	value int64
	freed bool
}

func TestNewobjpool(t *testing.T) {
	setts := s.Settings{"initial": int64(8), "grow": int64(4)}
	pool := NewObjpool[tnode]("testnew", setts, nil, nil)
	if pool == nil {
		t.Fatalf("unexpected nil pool")
	}
	stats := pool.Stats()
	if x, y := int64(8), stats["free"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if x, y := int64(8), stats["created"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	}
	pool.Destroy()

	// invalid settings
	if p := NewObjpool[tnode]("bad", s.Settings{"grow": int64(0)}, nil, nil); p != nil {
		t.Errorf("expected nil pool for zero grow")
	}
	setts = s.Settings{"initial": int64(-1)}
	if p := NewObjpool[tnode]("bad", setts, nil, nil); p != nil {
		t.Errorf("expected nil pool for negative initial")
	}
}

func TestObjpoolAlloc(t *testing.T) {
	nconstructed := 0
	construct := func() *tnode {
		nconstructed++
		return &tnode{value: int64(nconstructed)}
	}
	setts := s.Settings{"initial": int64(2), "grow": int64(3)}
	pool := NewObjpool[tnode]("testalloc", setts, construct, nil)

	objs := make([]*tnode, 0)
	for i := 0; i < 2; i++ {
		objs = append(objs, pool.Alloc())
	}
	if nconstructed != 2 {
		t.Errorf("expected %v, got %v", 2, nconstructed)
	}
	pool.Validate()

	// exhausted, next alloc constructs grow objects.
	objs = append(objs, pool.Alloc())
	if nconstructed != 5 {
		t.Errorf("expected %v, got %v", 5, nconstructed)
	}
	stats := pool.Stats()
	if x, y := int64(3), stats["allocated"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if x, y := int64(2), stats["free"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if x, y := int64(5), stats["created"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	}

	for _, obj := range objs {
		if err := pool.Free(obj); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}
	pool.Validate()
	pool.Log()
	pool.Destroy()
}

func TestObjpoolDegrade(t *testing.T) {
	ndestroyed := 0
	dtor := func(x *tnode) {
		x.freed = true
		ndestroyed++
	}
	setts := s.Settings{"initial": int64(0), "grow": int64(1), "maxfree": int64(2)}
	pool := NewObjpool[tnode]("testdegrade", setts, nil, dtor)

	objs := make([]*tnode, 0)
	for i := 0; i < 4; i++ {
		objs = append(objs, pool.Alloc())
	}
	// first two frees park in the free array, the ceiling drops the rest.
	for _, obj := range objs {
		if err := pool.Free(obj); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}
	stats := pool.Stats()
	if x, y := int64(2), stats["free"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if x, y := int64(2), stats["dropped"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if ndestroyed != 2 {
		t.Errorf("expected %v, got %v", 2, ndestroyed)
	} else if objs[2].freed == false || objs[3].freed == false {
		t.Errorf("expected dropped objects to run the destructor")
	}
	pool.Validate()

	// teardown destroys the two pooled objects as well.
	pool.Destroy()
	if ndestroyed != 4 {
		t.Errorf("expected %v, got %v", 4, ndestroyed)
	}

	if err := pool.Free(nil); err != api.ErrorNilArgument {
		t.Errorf("expected %v, got %v", api.ErrorNilArgument, err)
	}
}

func BenchmarkObjpoolAlloc(b *testing.B) {
	setts := s.Settings{"initial": int64(128), "grow": int64(64)}
	pool := NewObjpool[tnode]("bench", setts, nil, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Free(pool.Alloc())
	}
}
