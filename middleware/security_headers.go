package middleware

import (
	"github.com/dmitrymomot/mvc"
)

// SecurityHeadersConfig configures the security headers decorator.
// Empty values leave the matching header unset.
type SecurityHeadersConfig struct {
	// ContentTypeOptions controls X-Content-Type-Options header
	ContentTypeOptions string

	// FrameOptions controls X-Frame-Options header
	FrameOptions string

	// XSSProtection controls X-XSS-Protection header
	XSSProtection string

	// StrictTransportSecurity controls Strict-Transport-Security header
	StrictTransportSecurity string

	// ContentSecurityPolicy controls Content-Security-Policy header
	ContentSecurityPolicy string

	// ReferrerPolicy controls Referrer-Policy header
	ReferrerPolicy string

	// PermissionsPolicy controls Permissions-Policy header
	PermissionsPolicy string

	// CrossOriginOpenerPolicy controls Cross-Origin-Opener-Policy header
	CrossOriginOpenerPolicy string

	// CrossOriginEmbedderPolicy controls Cross-Origin-Embedder-Policy header
	CrossOriginEmbedderPolicy string

	// CrossOriginResourcePolicy controls Cross-Origin-Resource-Policy header
	CrossOriginResourcePolicy string

	// CustomHeaders are set after the standard ones, sorted by name
	CustomHeaders map[string]string

	// IsDevelopment disables HSTS
	IsDevelopment bool
}

// Predefined security configurations
var (
	// StrictSecurity provides maximum security with strict policies.
	StrictSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "DENY",
		XSSProtection:             "1; mode=block",
		StrictTransportSecurity:   "max-age=63072000; includeSubDomains; preload",
		ContentSecurityPolicy:     "default-src 'none'; script-src 'self'; style-src 'self'; img-src 'self'; font-src 'self'; connect-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
		ReferrerPolicy:            "no-referrer",
		PermissionsPolicy:         "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginResourcePolicy: "same-origin",
	}

	// BalancedSecurity provides good security with compatibility.
	// Use this for most web applications.
	BalancedSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "SAMEORIGIN",
		XSSProtection:             "1; mode=block",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		ContentSecurityPolicy:     "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' data:",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		PermissionsPolicy:         "geolocation=(), microphone=(), camera=()",
		CrossOriginOpenerPolicy:   "same-origin-allow-popups",
		CrossOriginResourcePolicy: "cross-origin",
	}
)

// SecurityHeaders returns a method decorator setting the configured security
// headers in a fixed order, custom headers last.
//
//	cfg := middleware.BalancedSecurity
//	cfg.IsDevelopment = true
//	app.Endpoint(ctrl, "Index", mvc.OnMethod(middleware.SecurityHeaders(cfg)))
func SecurityHeaders(cfg SecurityHeadersConfig) mvc.Decorator {
	return mvc.Header(SecurityHeaderFields(cfg))
}

// SecurityHeaderFields lists the headers SecurityHeaders sets, in order.
func SecurityHeaderFields(cfg SecurityHeadersConfig) mvc.Fields {
	// Handle development mode - disable HSTS
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	candidates := mvc.Fields{
		{Name: "X-Content-Type-Options", Value: cfg.ContentTypeOptions},
		{Name: "X-Frame-Options", Value: cfg.FrameOptions},
		{Name: "X-XSS-Protection", Value: cfg.XSSProtection},
		{Name: "Strict-Transport-Security", Value: cfg.StrictTransportSecurity},
		{Name: "Content-Security-Policy", Value: cfg.ContentSecurityPolicy},
		{Name: "Referrer-Policy", Value: cfg.ReferrerPolicy},
		{Name: "Permissions-Policy", Value: cfg.PermissionsPolicy},
		{Name: "Cross-Origin-Opener-Policy", Value: cfg.CrossOriginOpenerPolicy},
		{Name: "Cross-Origin-Embedder-Policy", Value: cfg.CrossOriginEmbedderPolicy},
		{Name: "Cross-Origin-Resource-Policy", Value: cfg.CrossOriginResourcePolicy},
	}

	fields := make(mvc.Fields, 0, len(candidates)+len(cfg.CustomHeaders))
	for _, f := range candidates {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return append(fields, mvc.FieldsFromMap(cfg.CustomHeaders)...)
}
