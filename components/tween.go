package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween moves a floating platform along its vertical path.
var Tween = donburi.NewComponentType[gween.Sequence]()
