package resource

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Statistics aggregates slot usage across one or more managers
type Statistics struct {
	ManagerCount int
	Capacity     int
	Size         int
}

func (s *Statistics) Clear() {
	s.ManagerCount = 0
	s.Capacity = 0
	s.Size = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.ManagerCount += other.ManagerCount
	s.Capacity += other.Capacity
	s.Size += other.Size
}

// Free returns the number of slots available to Add
func (s *Statistics) Free() int {
	return s.Capacity - s.Size
}

// AddStatistics adds this manager's slot usage to stats
func (m *Manager[L, T]) AddStatistics(stats *Statistics) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	stats.ManagerCount++
	stats.Capacity += len(m.elems)
	stats.Size += m.size
}

// BuildStatsString writes a JSON object describing this manager's slots to writer. Only slots that
// have been used at least once are listed in Slots.
func (m *Manager[L, T]) BuildStatsString(writer *jwriter.Writer) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	obj := writer.Object()
	defer obj.End()

	obj.Name("Name").String(m.name)
	obj.Name("IndexBits").Int(int(indexBits[L]()))
	obj.Name("Capacity").Int(len(m.elems))
	obj.Name("Size").Int(m.size)
	obj.Name("Flags").String(m.flags.String())

	slots := obj.Name("Slots").Array()
	defer slots.End()

	for i, entry := range m.entries {
		active := m.actives.Test(uint(i))
		if !active && entry.generation == 0 {
			continue
		}

		slot := slots.Object()
		slot.Name("Index").Int(i)
		slot.Name("Generation").Int(int(entry.generation))
		slot.Name("Active").Bool(active)
		slot.End()
	}
}
