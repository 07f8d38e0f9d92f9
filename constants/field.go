package constants

// Cosmic Field Preset
const (
	FieldParticleCount = 150

	// FieldVelocitySpan is the per-axis velocity range, centered on zero
	FieldVelocitySpan = 0.3

	FieldRadiusMin  = 0.5
	FieldRadiusSpan = 2.0

	// FieldHueMin and FieldHueSpan bias particle color toward violet
	FieldHueMin        = 280.0
	FieldHueSpan       = 40.0
	FieldSaturation    = 0.70
	FieldLightness     = 0.60
	FieldLinkDistance  = 100.0
	FieldLinkMaxAlpha  = 0.2
	FieldLinkWidth     = 0.5
	FieldGradientScale = 0.6
)

// Shimmer: opacity = sin(ms*FieldShimmerTime + x*FieldShimmerSpace)*amp + offset
const (
	FieldShimmerTime   = 0.001
	FieldShimmerSpace  = 0.01
	FieldShimmerAmp    = 0.3
	FieldShimmerOffset = 0.5
)

// Footer Field Preset
const (
	FooterParticleCount = 100
	FooterVelocitySpan  = 0.2
	FooterRadiusMin     = 0.3
	FooterRadiusSpan    = 1.5
	FooterLifeMin       = 100
	FooterLifeSpan      = 200
	FooterMaxOpacity    = 0.8
	FooterStarCount     = 50

	// FooterAltColorChance picks between the two footer palette colors
	FooterAltColorChance = 0.6

	// Footer links only join each particle to its next two pool neighbors
	FooterLinkDistance  = 60.0
	FooterLinkMaxAlpha  = 0.15
	FooterLinkNeighbors = 2
)

// Footer Stars: opacity = sin(phase)*amp + offset, phase advancing each frame
const (
	FooterStarRadiusMin  = 0.2
	FooterStarRadiusSpan = 0.8
	FooterTwinkleStep    = 0.02
	FooterTwinkleAmp     = 0.4
	FooterTwinkleOffset  = 0.3
)
