package render

// overlayCalibration maps camera extent per zoom unit to overlay scale.
// Tuned so the axis markers span a constant fraction of the viewport.
const overlayCalibration = 40.0

// OverlayScaler keeps a camera-relative overlay at constant screen size
// as the user zooms. The update is a multiplicative recurrence: each
// tick applies only the incremental transfer since the previous tick,
// because geometry scale on the objects compounds relative to their
// current state.
type OverlayScaler struct {
	k    float64
	prev float64
}

// NewOverlayScaler returns a scaler with calibration constant k
// (overlayCalibration when k <= 0) and a unit starting scale.
func NewOverlayScaler(k float64) *OverlayScaler {
	if k <= 0 {
		k = overlayCalibration
	}
	return &OverlayScaler{k: k, prev: 1}
}

// Rescale adjusts every overlay object for the current camera and
// returns the new cumulative scale. Calling it again with an unchanged
// extent and zoom applies a transfer of exactly 1.
func (o *OverlayScaler) Rescale(extent, zoom float64, overlay []Object) float64 {
	current := extent / zoom / o.k
	transfer := current / o.prev

	for _, obj := range overlay {
		obj.ScaleGeometry(transfer)
		obj.SetPosition(obj.Position().Scale(transfer))
	}

	o.prev = current
	return current
}
