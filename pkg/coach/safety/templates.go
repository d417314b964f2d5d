package safety

import (
	"fmt"
	"strings"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/risk"
)

// Response is the rendered safety reply for a detected crisis.
type Response struct {
	Message   string
	Resources []string
	Hotlines  []string
}

type regionEntry struct {
	match     string // case-insensitive substring matched against the profile region
	hotlines  []string
	resources []string
}

var (
	usHotlines = []string{
		"988 Suicide & Crisis Lifeline: call or text 988",
		"Crisis Text Line: text HOME to 741741",
		"Emergency Services: 911",
	}
	usResources = []string{
		"National Alliance on Mental Illness - nami.org",
		"SAMHSA Treatment Locator - findtreatment.gov",
	}

	ukHotlines = []string{
		"Samaritans: 116 123",
		"Shout Crisis Text Line: text SHOUT to 85258",
		"Emergency Services: 999",
	}
	ukResources = []string{
		"Mind - mind.org.uk",
		"NHS Mental Health Services - nhs.uk/mental-health",
	}
)

// Fixed hotline table. Resolution is substring-based so "Lagos, Nigeria"
// and "NIGERIA" both resolve; anything unmatched falls back to the
// international set, never to an error. Aliases share one hotline set.
var regionTable = []regionEntry{
	{
		match: "nigeria",
		hotlines: []string{
			"Nigeria Suicide Prevention Initiative: 0806 210 6493",
			"Mentally Aware Nigeria Initiative (MANI): 0809 111 6264",
			"Lagos Emergency Services: 112",
		},
		resources: []string{
			"Mentally Aware Nigeria Initiative - mentallyaware.org",
			"She Writes Woman - shewriteswoman.org",
		},
	},
	{match: "usa", hotlines: usHotlines, resources: usResources},
	{match: "united states", hotlines: usHotlines, resources: usResources},
	{match: "america", hotlines: usHotlines, resources: usResources},
	{match: "uk", hotlines: ukHotlines, resources: ukResources},
	{match: "united kingdom", hotlines: ukHotlines, resources: ukResources},
	{match: "britain", hotlines: ukHotlines, resources: ukResources},
	{match: "england", hotlines: ukHotlines, resources: ukResources},
	{
		match: "canada",
		hotlines: []string{
			"Talk Suicide Canada: 1-833-456-4566",
			"Crisis Text Line: text TALK to 686868",
			"Emergency Services: 911",
		},
		resources: []string{
			"Canadian Mental Health Association - cmha.ca",
			"Wellness Together Canada - wellnesstogether.ca",
		},
	},
}

var internationalEntry = regionEntry{
	hotlines: []string{
		"International Association for Suicide Prevention: iasp.info/resources/Crisis_Centres",
		"Befrienders Worldwide: befrienders.org",
		"Your local emergency services",
	},
	resources: []string{
		"World Health Organization mental health resources - who.int/health-topics/mental-health",
		"Open Counseling international hotline directory - opencounseling.com/suicide-hotlines",
	},
}

// TemplateEngine renders the fixed-structure safety message for a tier.
// Deterministic templating, not generative: the safety message is never
// touched by an upstream model.
type TemplateEngine struct{}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{}
}

// Render resolves the caller's region to a hotline set and interpolates it
// into the tier's fixed template. An empty or unrecognized region resolves
// to the international fallback set.
func (e *TemplateEngine) Render(level risk.Level, region string) Response {
	entry := resolveRegion(region)
	block := hotlineBlock(entry.hotlines)

	var message string
	switch level {
	case risk.LevelHigh, risk.LevelCritical:
		// Critical has no classifier path yet; render the strongest
		// template so a future escalation tier never yields an empty reply.
		message = fmt.Sprintf(highTemplate, block)
	case risk.LevelMedium:
		message = fmt.Sprintf(mediumTemplate, block)
	default:
		message = fmt.Sprintf(lowTemplate, block)
	}

	return Response{
		Message:   message,
		Resources: append([]string(nil), entry.resources...),
		Hotlines:  append([]string(nil), entry.hotlines...),
	}
}

func resolveRegion(region string) regionEntry {
	lowered := strings.ToLower(strings.TrimSpace(region))
	if lowered == "" {
		return internationalEntry
	}
	for _, entry := range regionTable {
		if strings.Contains(lowered, entry.match) {
			return entry
		}
	}
	return internationalEntry
}

func hotlineBlock(hotlines []string) string {
	var b strings.Builder
	for _, h := range hotlines {
		b.WriteString("- ")
		b.WriteString(h)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

const highTemplate = `I'm really concerned about what you just shared. What you're feeling matters, and you deserve immediate support from someone trained to help.

Please reach out to one of these right now:
%s

If you are in immediate danger, please go to your nearest emergency room or call your local emergency services. Stay with someone you trust, and remove anything you could use to harm yourself.

I'm an AI wellness coach, and this is not a substitute for professional care. Please talk to a crisis counselor or a mental health professional today. You don't have to face this alone.`

const mediumTemplate = `Thank you for trusting me with this. What you're going through sounds really heavy, and I want you to know that support is available.

These services have people who understand and want to help:
%s

Talking to a professional can make a real difference. I'm an AI coach and not a substitute for professional care, but I'm here to listen whenever you want to keep talking.`

const lowTemplate = `It sounds like things have been weighing on you lately. That's completely human, and reaching out is a good first step.

If you ever want to talk to someone, these are here for you:
%s

Be gentle with yourself today. Small things count - a short walk, some rest, a chat with a friend. I'm here whenever you want to continue the conversation.`
