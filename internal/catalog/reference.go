package catalog

// ProductNames is the fixed catalog of fixture product names. One row is
// generated per entry, in order.
var ProductNames = []string{
	"Aurora Dashboard Kit",
	"Nimbus Landing Theme",
	"Velocity Ecommerce Stack",
	"Lumen Icon System",
	"Pulse Motion Library",
	"Spectra Design Tokens",
	"Orbit Analytics Pack",
	"Canvas Marketing Blocks",
	"Stratus Blog Theme",
	"Vector Illustration Suite",
	"Beacon Notification Center",
	"Harbor Support KB",
	"Atlas Admin Shell",
	"Drift Chat Widgets",
	"Forge UI Patterns",
	"Beacon Onboarding Flow",
	"Vertex Presentation Deck",
	"Quartz Data Tables",
	"Helix Charts Toolkit",
	"Nimbus Commerce Checkout",
	"Signal Automation Recipes",
	"Nova Email Templates",
	"Tempo Scheduling Suite",
	"Loop Feedback Forms",
	"Summit Pricing Builder",
	"Pilot Roadmap Canvas",
	"Merge Collaboration Kit",
	"Ripple Audio Player",
	"Tonic Video Player",
	"Flux Timeline Pack",
	"Glyph Icon Essentials",
	"Orbit Checkout Modal",
	"Vector Hero Library",
	"Lattice Data Grid",
	"Zen Support Portal",
	"Prism Gradient Bundle",
	"Momentum Launch Page",
	"Stellar SaaS Shell",
	"Canvas Portfolio Stack",
	"Nimbus Feature Flags",
	"Beacon Alert Banners",
	"Constellation Navigation",
	"Echo Voice Commands",
	"Vertex Changelog Feed",
	"Pulse KPI Dashboard",
	"Summit Sales CRM",
	"Helix Reporting Suite",
	"Atlas Billing Module",
	"Drift Webinar Kit",
	"Lumen Accessibility Pack",
}

// Badges is the badge reference list; each row samples 0-2 entries.
var Badges = []string{
	"Bestseller",
	"New",
	"Staff Pick",
	"Limited",
	"Trending",
	"Editor Choice",
}

// Tags is the tag reference list; each row samples 2-4 entries.
var Tags = []string{
	"UI",
	"UX",
	"React",
	"Astro",
	"Design",
	"Motion",
	"Marketing",
	"Analytics",
	"Commerce",
	"Docs",
	"Templates",
	"Automation",
}
