package analysis

import "regexp"

// detection is one (pattern, result) pair in an ordered table. Tables are
// linear scans with first-match-wins semantics: a more specific pattern
// must be listed before any generic pattern that would also match it.
// Never convert these to maps; the slice order IS the priority.
type detection struct {
	pattern *regexp.Regexp
	value   string
}

func re(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

// taskVerbs is the gate vocabulary. Input with none of these whole words
// is treated as not task-like and skips extraction entirely.
var taskVerbs = re(`(?i)\b(write|create|build|develop|make|generate|design|implement|code|debug|fix|help|explain|show|find|search|calculate|compute|analyze|review)\b`)

// websiteTask matches creation requests for a website; these get a fixed
// canonical phrasing instead of the generic normalization.
var websiteTask = re(`(?i)\b(create|make|build|develop|generate)\b.*\bweb\s?site\b`)

const canonicalWebsiteTask = "Create a fully functional, responsive website"

// rolePatterns detect an explicit technology or activity signal and map it
// to a persona. Framework patterns come before the language patterns that
// would swallow them; generic fallbacks (debugging, API, testing) are last.
// Bare "website"/"web" is intentionally absent here: without a named
// technology the role is inferred later from task content, not detected.
var rolePatterns = []detection{
	// Web / frontend
	{re(`(?i)\b(react|next\.?js|vue|nuxt|angular|svelte)\b`), "Expert frontend developer specializing in modern JavaScript frameworks"},
	{re(`(?i)\b(html|css|tailwind|bootstrap|frontend|front-end)\b`), "Expert frontend web developer with strong HTML, CSS, and JavaScript skills"},
	// Backend by language
	{re(`(?i)\b(django|flask|fastapi)\b`), "Expert Python backend developer"},
	{re(`(?i)\b(pandas|numpy|jupyter)\b`), "Expert Python data engineer"},
	{re(`(?i)\bpython\b`), "Expert Python developer"},
	{re(`(?i)\b(node\.?js|express|nestjs)\b`), "Expert Node.js backend developer"},
	{re(`(?i)\b(typescript|javascript)\b`), "Expert JavaScript/TypeScript developer"},
	{re(`(?i)\b(golang|goroutine)\b`), "Expert Go backend developer"},
	{re(`(?i)\b(rust|cargo)\b`), "Expert Rust developer"},
	{re(`(?i)\b(java|spring|kotlin\s+server)\b`), "Expert Java backend developer"},
	{re(`(?i)\b(c#|\.net|dotnet)\b`), "Expert C#/.NET developer"},
	{re(`(?i)\b(ruby|rails)\b`), "Expert Ruby on Rails developer"},
	{re(`(?i)\b(php|laravel)\b`), "Expert PHP developer"},
	// Cloud / DevOps
	{re(`(?i)\b(kubernetes|k8s|docker|terraform|ansible|ci/cd|devops|aws|azure|gcp)\b`), "Expert cloud and DevOps engineer"},
	// Data / ML
	{re(`(?i)\b(machine\s?learning|deep\s?learning|neural\s?network|tensorflow|pytorch|llm)\b`), "Expert machine learning engineer"},
	{re(`(?i)\b(data\s?(analysis|analytics|science)|dataset|visuali[sz]ation)\b`), "Expert data analyst"},
	// Embedded / systems
	{re(`(?i)\b(embedded|firmware|microcontroller|arduino|raspberry\s?pi|rtos)\b`), "Expert embedded systems engineer"},
	{re(`(?i)\b(operating\s?system|kernel|driver|low-level|assembly)\b`), "Expert systems programmer"},
	// Mobile
	{re(`(?i)\b(android|ios|swift|swiftui|flutter|react\s?native|mobile\s?app)\b`), "Expert mobile app developer"},
	// Security
	{re(`(?i)\b(security|vulnerabilit|penetration|exploit|xss|sql\s?injection|encryption)`), "Expert application security engineer"},
	// Database
	{re(`(?i)\b(database|postgres(ql)?|mysql|sqlite|mongodb|redis|schema|sql)\b`), "Expert database engineer"},
	// Generic fallbacks
	{re(`(?i)\b(debug|bug|error|crash|stack\s?trace|troubleshoot)\b`), "Experienced software developer with strong debugging skills"},
	{re(`(?i)\b(api|rest|graphql|endpoint|webhook)\b`), "Expert API developer"},
	{re(`(?i)\b(test|testing|unit\s?test|coverage|tdd)\b`), "Expert software engineer focused on testing and quality"},
}

// formatPatterns detect an explicit output-format cue. Named data formats
// come before the generic code cue so "a function that emits JSON" asks
// for JSON output, not just a code block.
var formatPatterns = []detection{
	{re(`(?i)\b(html|web\s?page|webpage)\b`), "Complete HTML, CSS, and JavaScript in separate code blocks"},
	{re(`(?i)\bjson\b`), "Valid JSON"},
	{re(`(?i)\bxml\b`), "Well-formed XML"},
	{re(`(?i)\bcsv\b`), "CSV with a header row"},
	{re(`(?i)\byaml\b`), "Valid YAML"},
	{re(`(?i)\bmarkdown\b`), "A Markdown document"},
	{re(`(?i)\b(table|spreadsheet)\b`), "A structured table"},
	{re(`(?i)\b(function|class|script|snippet|program|code)\b`), "A code block with inline comments"},
	{re(`(?i)\b(step[ -]by[ -]step|steps|guide|tutorial|walkthrough|how\s+to)\b`), "Numbered step-by-step instructions"},
	{re(`(?i)\b(example|sample|demo)\b`), "An explanation followed by worked examples"},
	{re(`(?i)\b(list|bullet)\b`), "A bulleted list"},
}

// constraintPatterns map ecosystem cues and cross-cutting concerns to a
// single best-practice statement. Only one constraint is ever returned;
// the first match wins even when several cues are present.
var constraintPatterns = []detection{
	{re(`(?i)\b(react|vue|angular|svelte)\b`), "Follow current best practices for the chosen framework: functional components, hooks over classes, and minimal state."},
	{re(`(?i)\b(python|django|flask)\b`), "Follow PEP 8, include type hints, and handle errors explicitly rather than silently."},
	{re(`(?i)\b(typescript|javascript|node)\b`), "Use modern ES modules and strict typing; avoid deprecated APIs and implicit any."},
	{re(`(?i)\bgolang\b`), "Follow standard Go conventions: explicit error handling, small interfaces, gofmt formatting."},
	{re(`(?i)\b(rust|cargo)\b`), "Prefer safe Rust; justify any unsafe block and handle all Result values."},
	{re(`(?i)\b(clean|readable|maintainable|simple)\b`), "Prioritize readability and maintainability over cleverness."},
	{re(`(?i)\b(fast|performan(t|ce)|optimi[sz]e|efficient)\b`), "Optimize for performance and state the time and space complexity of the approach."},
	{re(`(?i)\b(secure|security|saniti[sz]e|injection|auth)`), "Validate and sanitize every input; never interpolate untrusted data into queries or markup."},
	{re(`(?i)\b(test|tested|testing|tdd)\b`), "Include unit tests covering the main paths and edge cases."},
	{re(`(?i)\b(mobile|responsive|phone|tablet)\b`), "The result must work on mobile and desktop; use responsive layout techniques."},
	{re(`(?i)\b(open[ -]source|licen[sc]e|mit|apache)\b`), "Use only dependencies with permissive open-source licenses."},
	{re(`(?i)\b(accessib|a11y|wcag|screen\s?reader)`), "Meet WCAG accessibility guidelines: semantic markup, labels, and keyboard navigation."},
}

// tonePatterns detect level-of-detail, audience, and delivery cues.
var tonePatterns = []detection{
	{re(`(?i)\b(detailed|in[ -]depth|thorough|comprehensive|extensive)\b`), "Detailed and thorough"},
	{re(`(?i)\b(brief(ly)?|quick(ly)?|short|concise|summary)\b`), "Concise and to the point"},
	{re(`(?i)\b(beginner|new\s+to|just\s+learning|novice|eli5|explain\s+like)\b`), "Patient and beginner-friendly, avoiding unexplained jargon"},
	{re(`(?i)\b(expert|advanced|senior)\b`), "Technical and precise, aimed at an experienced audience"},
	{re(`(?i)\b(casual|friendly|fun|playful)\b`), "Casual and friendly"},
	{re(`(?i)\b(formal|business|corporate|professional)\b`), "Formal and businesslike"},
	{re(`(?i)\b(production|enterprise|robust)\b`), "Pragmatic and production-focused"},
	{re(`(?i)\b(teach|learn|tutorial|lesson)\b`), "Instructional, building up concepts step by step"},
}
