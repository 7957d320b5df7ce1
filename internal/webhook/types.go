package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for X-Hub-Signature-256
	VerifySignature bool     // Secret is only checked when set
	AllowedIPs      []string // Exact IPs or CIDR ranges; empty allows all
	RateLimitPerMin int      // Per source IP; 0 disables
	MaxPayloadBytes int64    // 0 means defaultMaxPayloadBytes
	ExposeErrors    bool     // Return internal error text on 500s
}

const defaultMaxPayloadBytes int64 = 1 << 20
