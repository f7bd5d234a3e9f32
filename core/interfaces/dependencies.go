// ABOUTME: Dependencies container wires infrastructure into core services
// ABOUTME: Services take what they need from it; nil members disable the matching feature

package interfaces

// Dependencies holds the external collaborators shared by core services
type Dependencies struct {
	// Cache stores fetched listings; nil disables caching
	Cache Cache

	// HTTPClient fetches Reddit feeds
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Renderer turns post bodies into blocks
	Renderer BodyRenderer
}
