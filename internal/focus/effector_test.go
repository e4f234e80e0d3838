package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// recordingNode counts focus calls for one target.
type recordingNode struct {
	target domain.ActiveIndex
	calls  *[]domain.ActiveIndex
}

func (n recordingNode) Focus() {
	*n.calls = append(*n.calls, n.target)
}

// fakeRegistry serves nodes for targets below the missing threshold.
type fakeRegistry struct {
	calls   []domain.ActiveIndex
	missing map[domain.ActiveIndex]bool
}

func (r *fakeRegistry) Node(target domain.ActiveIndex) Focusable {
	if r.missing[target] {
		return nil
	}
	return recordingNode{target: target, calls: &r.calls}
}

func TestFocusDeferredUntilFlush(t *testing.T) {
	bus := eventbus.New()
	reg := &fakeRegistry{}
	queue := NewQueueScheduler()
	NewEffector(bus, reg, queue)

	bus.Publish(domain.ActiveChangedEvent{Old: domain.ActiveDropdown, New: 1})

	// Never synchronously inside the event dispatch.
	require.Empty(t, reg.calls)

	queue.Flush()
	assert.Equal(t, []domain.ActiveIndex{1}, reg.calls)
}

func TestOneFocusCallPerLogicalTransition(t *testing.T) {
	bus := eventbus.New()
	reg := &fakeRegistry{}
	queue := NewQueueScheduler()
	NewEffector(bus, reg, queue)

	// Two transitions land before the host renders; only the final target
	// receives focus, exactly once.
	bus.Publish(domain.ActiveChangedEvent{Old: domain.ActiveDropdown, New: 2})
	bus.Publish(domain.ActiveChangedEvent{Old: 2, New: 0})

	queue.Flush()
	queue.Flush() // one-shot: a second flush finds nothing pending

	assert.Equal(t, []domain.ActiveIndex{0}, reg.calls)
}

func TestStaleTargetIsSkipped(t *testing.T) {
	bus := eventbus.New()
	reg := &fakeRegistry{missing: map[domain.ActiveIndex]bool{3: true}}
	queue := NewQueueScheduler()
	NewEffector(bus, reg, queue)

	bus.Publish(domain.ActiveChangedEvent{Old: domain.ActiveDropdown, New: 3})

	// Node vanished between transition and render: silent no-op.
	assert.NotPanics(t, func() { queue.Flush() })
	assert.Empty(t, reg.calls)
}

func TestNilRegistryTolerated(t *testing.T) {
	bus := eventbus.New()
	queue := NewQueueScheduler()
	NewEffector(bus, nil, queue)

	bus.Publish(domain.ActiveChangedEvent{Old: domain.ActiveDropdown, New: 0})
	assert.NotPanics(t, func() { queue.Flush() })
}

func TestActiveNoneIsNeverFocused(t *testing.T) {
	bus := eventbus.New()
	reg := &fakeRegistry{}
	queue := NewQueueScheduler()
	NewEffector(bus, reg, queue)

	bus.Publish(domain.ActiveChangedEvent{Old: 0, New: domain.ActiveNone})

	queue.Flush()
	assert.Empty(t, reg.calls)
}

func TestTeardownCancelsPendingFocus(t *testing.T) {
	bus := eventbus.New()
	reg := &fakeRegistry{}
	queue := NewQueueScheduler()
	e := NewEffector(bus, reg, queue)

	bus.Publish(domain.ActiveChangedEvent{Old: domain.ActiveDropdown, New: 0})
	e.Teardown()

	queue.Flush()
	assert.Empty(t, reg.calls, "widget torn down before the effect ran")

	// Transitions after teardown are ignored entirely.
	e.Request(1)
	queue.Flush()
	assert.Empty(t, reg.calls)
}

func TestQueueSchedulerCancel(t *testing.T) {
	queue := NewQueueScheduler()

	var ran bool
	cancel := queue.Schedule(func() { ran = true })
	cancel()
	queue.Flush()

	assert.False(t, ran)
}

func TestQueueSchedulerRunsInOrder(t *testing.T) {
	queue := NewQueueScheduler()

	var order []int
	queue.Schedule(func() { order = append(order, 1) })
	queue.Schedule(func() { order = append(order, 2) })
	queue.Flush()

	assert.Equal(t, []int{1, 2}, order)
}
