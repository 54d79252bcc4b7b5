package host

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

// 🔧 fakeDialog remembers a selection and how often it was shown
type fakeDialog struct {
	parent    Window
	selection string
	shows     int
	showErr   error
}

func (d *fakeDialog) Show(ctx context.Context) error {
	d.shows++
	return d.showErr
}

// 🔧 countingFactories builds fakeDialogs and counts constructions per kind
type countingFactories struct {
	mu      sync.Mutex
	created map[DialogKind]int
	fail    map[DialogKind]error
}

func newCountingFactories() *countingFactories {
	return &countingFactories{created: map[DialogKind]int{}, fail: map[DialogKind]error{}}
}

func (c *countingFactories) build() map[DialogKind]Factory {
	out := map[DialogKind]Factory{}
	for _, kind := range Kinds() {
		kind := kind
		out[kind] = func(ctx context.Context, parent Window) (Dialog, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if err := c.fail[kind]; err != nil {
				return nil, err
			}
			c.created[kind]++
			return &fakeDialog{parent: parent}, nil
		}
	}
	return out
}

func TestRegistrySingleInstance(t *testing.T) {
	ctx := testContext(t)
	factories := newCountingFactories()
	reg := NewRegistry(NewMemoryHost("Capture"), factories.build())

	assert.Empty(t, reg.dialogs, "nothing is created before the first open")

	require.NoError(t, reg.Open(ctx, KindMigrate))
	d, err := reg.getOrCreate(ctx, KindMigrate)
	require.NoError(t, err)
	first := d.(*fakeDialog)
	first.selection = "/shows/src"

	require.NoError(t, reg.Open(ctx, KindMigrate))
	d, err = reg.getOrCreate(ctx, KindMigrate)
	require.NoError(t, err)
	second := d.(*fakeDialog)

	assert.Same(t, first, second, "the same dialog is reused")
	assert.Equal(t, "/shows/src", second.selection, "selections survive reopening")
	assert.Equal(t, 2, second.shows)
	assert.Equal(t, 1, factories.created[KindMigrate])
	assert.Equal(t, Window{Title: "Capture"}, second.parent)
}

func TestRegistryKindsAreIndependent(t *testing.T) {
	ctx := testContext(t)
	factories := newCountingFactories()
	reg := NewRegistry(NewMemoryHost("Capture"), factories.build())

	for _, kind := range Kinds() {
		require.NoError(t, reg.Open(ctx, kind))
		require.NoError(t, reg.Open(ctx, kind))
	}

	for _, kind := range Kinds() {
		assert.Equal(t, 1, factories.created[kind], kind.String())
	}
}

func TestRegistryFailedFactoryIsRetried(t *testing.T) {
	ctx := testContext(t)
	factories := newCountingFactories()
	factories.fail[KindRefCleanup] = errors.New("no display")
	reg := NewRegistry(NewMemoryHost("Capture"), factories.build())

	err := reg.Open(ctx, KindRefCleanup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.NotContains(t, reg.dialogs, KindRefCleanup, "a failed creation leaves no entry")

	delete(factories.fail, KindRefCleanup)
	require.NoError(t, reg.Open(ctx, KindRefCleanup))
	assert.Equal(t, 1, factories.created[KindRefCleanup])
}

func TestRegistryShowErrorKeepsDialog(t *testing.T) {
	ctx := testContext(t)
	d := &fakeDialog{showErr: errors.New("closed")}
	reg := NewRegistry(NewMemoryHost("Capture"), map[DialogKind]Factory{
		KindFileStruct: func(ctx context.Context, parent Window) (Dialog, error) { return d, nil },
	})

	require.Error(t, reg.Open(ctx, KindFileStruct))
	got, err := reg.getOrCreate(ctx, KindFileStruct)
	require.NoError(t, err)
	assert.Same(t, d, got)
}

func TestRegistryUnknownKind(t *testing.T) {
	reg := NewRegistry(NewMemoryHost("Capture"), nil)
	err := reg.Open(testContext(t), KindMigrate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dialog registered for MigrateDirectories")
}

func TestRegistryConcurrentOpen(t *testing.T) {
	ctx := testContext(t)
	factories := newCountingFactories()
	reg := NewRegistry(NewMemoryHost("Capture"), factories.build())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = reg.getOrCreate(ctx, KindMigrate)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, factories.created[KindMigrate])
}

func TestMenu(t *testing.T) {
	ctx := testContext(t)
	factories := newCountingFactories()
	menu := NewMenu(NewRegistry(NewMemoryHost("Capture"), factories.build()))

	assert.Equal(t, "AGBO", menu.Title)
	assert.Equal(t, []string{"Migrate", "Ref Cleanup", "File Struct Generator"}, menu.Labels())
	for i, kind := range Kinds() {
		assert.Equal(t, kind, menu.Actions[i].Kind, menu.Actions[i].Label)
	}

	require.NoError(t, menu.Trigger(ctx, "Ref Cleanup"))
	require.NoError(t, menu.Trigger(ctx, "Ref Cleanup"))
	assert.Equal(t, 1, factories.created[KindRefCleanup])
	assert.Zero(t, factories.created[KindMigrate])

	err := menu.Trigger(ctx, "Delete Everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Delete Everything")
}

func TestMenuWrapsOpenErrors(t *testing.T) {
	factories := newCountingFactories()
	factories.fail[KindMigrate] = errors.New("no display")
	menu := NewMenu(NewRegistry(NewMemoryHost("Capture"), factories.build()))

	err := menu.Trigger(testContext(t), "Migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening the window")
}
