package config

import "sync"

// RuntimeSettings holds picking options that can change while running
type RuntimeSettings struct {
	mu                 sync.RWMutex
	frustumCull        bool
	highlightIntensity float32
}

var globalRuntimeSettings = &RuntimeSettings{
	frustumCull:        true,
	highlightIntensity: 0.9,
}

// GetFrustumCull returns whether picking skips objects outside the view frustum
func GetFrustumCull() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.frustumCull
}

// SetFrustumCull enables or disables the frustum pre-filter
func SetFrustumCull(enabled bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.frustumCull = enabled
}

// ToggleFrustumCull flips the frustum pre-filter and returns the new value
func ToggleFrustumCull() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.frustumCull = !globalRuntimeSettings.frustumCull
	return globalRuntimeSettings.frustumCull
}

// GetHighlightIntensity returns the emissive intensity of the hover highlight
func GetHighlightIntensity() float32 {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.highlightIntensity
}

// SetHighlightIntensity sets the hover highlight intensity
func SetHighlightIntensity(intensity float32) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to the emissive range
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	globalRuntimeSettings.highlightIntensity = intensity
}

// ApplyRuntime copies the runtime-adjustable values from c
func ApplyRuntime(c *Config) {
	SetFrustumCull(c.Picking.FrustumCull)
	SetHighlightIntensity(c.Highlight.Intensity)
}
