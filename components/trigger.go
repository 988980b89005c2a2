package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TriggerContactsData holds the trigger regions a body overlapped last frame.
type TriggerContactsData struct {
	Touching map[*resolv.Object]bool
}

var TriggerContacts = donburi.NewComponentType[TriggerContactsData]()

// ProbeData is the resolv object used for ground queries.
type ProbeData struct {
	*resolv.Object
}

var Probe = donburi.NewComponentType[ProbeData]()
