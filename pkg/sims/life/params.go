package life

import (
	"strconv"

	"mad-life/pkg/core"
)

// Parameters reports the settings l was built with. Keys match FromMap.
func (l *Life) Parameters() core.ParameterSnapshot {
	sz := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", sz.W),
				intParam("h", "Height", sz.H),
				intParam("timestep", "Frames per generation", l.Timestep()),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: l.cfg.Pattern},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.cfg.Seed, 10)},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Density, 'f', -1, 64)},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
