package components

import "github.com/yohamta/donburi"

// ClockData counts simulation ticks. It is the only source of "now".
type ClockData struct {
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()
