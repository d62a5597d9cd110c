package swarm

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"google.golang.org/protobuf/types/known/structpb"
)

// Tick fields carried by the *structpb.Struct sent to every flock actor.
const (
	fieldDt     = "dt"
	fieldLowerX = "lowerX"
	fieldLowerY = "lowerY"
	fieldUpperX = "upperX"
	fieldUpperY = "upperY"
)

func newTick(dt float64, b geometry.Bounds) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldDt:     structpb.NewNumberValue(dt),
		fieldLowerX: structpb.NewNumberValue(b.Lower.X),
		fieldLowerY: structpb.NewNumberValue(b.Lower.Y),
		fieldUpperX: structpb.NewNumberValue(b.Upper.X),
		fieldUpperY: structpb.NewNumberValue(b.Upper.Y),
	}}
}

func parseTick(msg *structpb.Struct) (float64, geometry.Bounds, error) {
	var vals [5]float64
	for i, name := range []string{fieldDt, fieldLowerX, fieldLowerY, fieldUpperX, fieldUpperY} {
		v, ok := msg.GetFields()[name]
		if !ok {
			return 0, geometry.Bounds{}, fmt.Errorf("tick is missing %q", name)
		}
		if _, isNum := v.GetKind().(*structpb.Value_NumberValue); !isNum {
			return 0, geometry.Bounds{}, fmt.Errorf("tick field %q is not a number", name)
		}
		vals[i] = v.GetNumberValue()
	}
	b := geometry.Bounds{
		Lower: geometry.Vector2D{X: vals[1], Y: vals[2]},
		Upper: geometry.Vector2D{X: vals[3], Y: vals[4]},
	}
	return vals[0], b, nil
}
