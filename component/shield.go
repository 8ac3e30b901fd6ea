package component

import "github.com/lixenwraith/tabletennis/constant"

// Shield is a collider plane behind the player paddle spanning the table width
// Active only while the shield power-up runs
type Shield struct {
	Active bool
	Z      float64
}

// NewShield returns an inactive shield at its fixed plane
func NewShield() *Shield {
	return &Shield{Z: constant.PaddleBoundaryZMax - constant.ShieldOffset}
}
