package xform

import "time"

type Intish interface {
	int | int8 | int16 | int32 | int64 | time.Duration
}

type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | int | uint | time.Duration
}
