package systems

import (
	"sort"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers publishes a TriggerEvent whenever a player starts or stops
// overlapping a tagged region. Must run after UpdatePhysics.
func UpdateTriggers(ecs *ecs.ECS) {
	components.TriggerContacts.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) || e.HasComponent(components.Death) {
			return
		}
		obj := components.Object.Get(e)
		contacts := components.TriggerContacts.Get(e)
		if contacts.Touching == nil {
			contacts.Touching = map[*resolv.Object]bool{}
		}

		now := map[*resolv.Object]bool{}
		var entered []*resolv.Object
		if check := obj.Check(0, 0, tags.TriggerTags...); check != nil {
			for _, other := range check.ObjectsByTags(tags.TriggerTags...) {
				if other == obj.Object || now[other] || !rectsOverlap(obj.Object, other) {
					continue
				}
				now[other] = true
				if !contacts.Touching[other] {
					entered = append(entered, other)
				}
			}
		}

		for other := range contacts.Touching {
			if !now[other] {
				Trigger.Publish(ecs.World, TriggerEvent{Entry: e, Other: other, Tag: triggerTag(other), Entered: false})
			}
		}

		// Checkpoints are handled before hazards touched on the same frame.
		sort.SliceStable(entered, func(i, j int) bool {
			return triggerRank(entered[i]) < triggerRank(entered[j])
		})
		for _, other := range entered {
			Trigger.Publish(ecs.World, TriggerEvent{Entry: e, Other: other, Tag: triggerTag(other), Entered: true})
		}
		contacts.Touching = now
	})
}

// triggerTag returns the first trigger tag carried by o.
func triggerTag(o *resolv.Object) string {
	if i := triggerRank(o); i < len(tags.TriggerTags) {
		return tags.TriggerTags[i]
	}
	return ""
}

func triggerRank(o *resolv.Object) int {
	for i, tag := range tags.TriggerTags {
		if o.HasTags(tag) {
			return i
		}
	}
	return len(tags.TriggerTags)
}

// entryOf returns the donburi entry linked to a resolv object, if any.
func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	if o == nil {
		return nil, false
	}
	entry, ok := o.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}
