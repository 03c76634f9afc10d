package patterns

// patternSpec is the source form of an embedded detection rule before
// compilation.
type patternSpec struct {
	name     string
	severity string
	expr     string

	// keywords overrides automatic literal extraction. Needed where the
	// regex parser factors alternation prefixes into fragments too short
	// to extract (e.g. `AKIA|AGPA|...` becomes `A(?:KIA|GPA|...)`). Each
	// keyword must still be a guaranteed substring of every match.
	keywords []string

	skipEntropy bool
	secretGroup int
}

// defaultPatterns is the embedded detection rule set. Patterns with an
// unambiguous structure (fixed prefixes, URL shapes, PEM headers) skip the
// entropy gate; patterns that match generic-looking values keep it and name a
// capture group holding the candidate secret.
var defaultPatterns = []patternSpec{
	{
		name:        "AWS Access Key ID",
		severity:    SeverityCritical,
		expr:        `\b(A3T[A-Z0-9]|AKIA|AGPA|AIDA|AROA|AIPA|ANPA|ANVA|ASIA)[A-Z0-9]{16}\b`,
		keywords:    []string{"a3t", "akia", "agpa", "aida", "aroa", "aipa", "anpa", "anva", "asia"},
		skipEntropy: true,
	},
	{
		name:        "AWS Secret Access Key",
		severity:    SeverityCritical,
		expr:        `(?i)aws.{0,25}['"]([0-9a-z/+]{40})['"]`,
		secretGroup: 1,
	},
	{
		name:     "GitHub Personal Access Token",
		severity: SeverityCritical,
		expr:     `\b(ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36}\b`,
		keywords: []string{"ghp_", "gho_", "ghu_", "ghs_", "ghr_"},
	},
	{
		name:     "GitHub Fine-Grained Token",
		severity: SeverityCritical,
		expr:     `\bgithub_pat_[A-Za-z0-9_]{22,255}\b`,
	},
	{
		name:     "GitLab Personal Access Token",
		severity: SeverityCritical,
		expr:     `\bglpat-[A-Za-z0-9_\-]{20}\b`,
	},
	{
		name:     "Google API Key",
		severity: SeverityHigh,
		expr:     `\bAIza[A-Za-z0-9_\-]{35}\b`,
	},
	{
		name:     "Slack Token",
		severity: SeverityHigh,
		expr:     `\bxox[baprs]-[A-Za-z0-9\-]{10,48}\b`,
	},
	{
		name:        "Slack Webhook URL",
		severity:    SeverityHigh,
		expr:        `hooks\.slack\.com/services/T[A-Za-z0-9_]{8,12}/B[A-Za-z0-9_]{8,12}/[A-Za-z0-9_]{24}`,
		skipEntropy: true,
	},
	{
		name:     "Stripe Secret Key",
		severity: SeverityCritical,
		expr:     `\b(sk_live|sk_test|rk_live|rk_test)_[A-Za-z0-9]{24,99}\b`,
		keywords: []string{"sk_live", "sk_test", "rk_live", "rk_test"},
	},
	{
		name:     "SendGrid API Key",
		severity: SeverityHigh,
		expr:     `\bSG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}\b`,
	},
	{
		name:     "Twilio API Key",
		severity: SeverityHigh,
		expr:     `(?i)twilio.{0,25}\bSK[0-9a-f]{32}\b`,
	},
	{
		name:     "npm Access Token",
		severity: SeverityHigh,
		expr:     `\bnpm_[A-Za-z0-9]{36}\b`,
	},
	{
		name:     "OpenAI API Key",
		severity: SeverityCritical,
		expr:     `\bsk-[A-Za-z0-9]{20}T3BlbkFJ[A-Za-z0-9]{20}\b`,
	},
	{
		name:        "JSON Web Token",
		severity:    SeverityMedium,
		expr:        `\beyJ[A-Za-z0-9_\-]{8,}\.[A-Za-z0-9_\-]{8,}\.[A-Za-z0-9_\-]{8,}\b`,
		skipEntropy: true,
	},
	{
		name:        "Private Key Block",
		severity:    SeverityCritical,
		expr:        `-----BEGIN (RSA |DSA |EC |OPENSSH |PGP |ENCRYPTED )?PRIVATE KEY( BLOCK)?-----`,
		skipEntropy: true,
	},
	{
		name:        "Generic API Key",
		severity:    SeverityMedium,
		expr:        `(?i)(api[_\-]?key|apikey)['"]?\s*[:=]\s*['"]?([a-z0-9_\-]{16,64})['"]?`,
		secretGroup: 2,
	},
	{
		name:        "Generic Secret Assignment",
		severity:    SeverityMedium,
		expr:        `(?i)(secret|token|passwd|password)[_a-z]*['"]?\s*[:=]\s*['"]?([a-z0-9/+=_\-]{8,64})['"]?`,
		secretGroup: 2,
	},
	{
		name:        "Database Connection String",
		severity:    SeverityHigh,
		expr:        `(?i)\b(postgres|postgresql|mysql|mongodb(\+srv)?|redis|amqp)://[a-z0-9_\-\.]{1,64}:([^@\s'"]{3,})@`,
		skipEntropy: true,
		secretGroup: 3,
	},
	{
		name:        "Heroku API Key",
		severity:    SeverityHigh,
		expr:        `(?i)heroku.{0,25}\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`,
		skipEntropy: true,
	},
	{
		name:     "Hex High-Entropy String",
		severity: SeverityLow,
		expr:     `(?i)\b[0-9a-f]{32,64}\b`,
	},
}
