// Package domain contains core business types for the Disha platform.
//
// This file defines the subscription plan catalog: a closed set of plans,
// each bundling a fixed list of feature descriptors. The catalog is static
// and read-only at runtime; the entitlement engine never mutates it.
package domain

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Plan identifies a subscription tier.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
	PlanMax  Plan = "max"
)

// Valid reports whether p is one of the closed set of plans.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanMax:
		return true
	}
	return false
}

// Limit is the tri-state cap on a feature: unlimited, a numeric cap, or none.
// The zero value means "no enforced cap", which callers must not read as
// "zero allowed".
type Limit struct {
	Unlimited bool `json:"unlimited,omitempty"`
	Capped    bool `json:"capped,omitempty"`
	N         int  `json:"n,omitempty"`
}

// NoLimit is the absent cap: the feature (or plan) is unknown, not included,
// or included without a numeric cap.
var NoLimit = Limit{}

// Enforced reports whether the limit carries a numeric cap that must be
// checked against usage.
func (l Limit) Enforced() bool {
	return l.Capped && !l.Unlimited
}

// Remaining returns max(0, N-used) for enforced limits. For unlimited or
// absent caps it returns -1, meaning "not applicable".
func (l Limit) Remaining(used int) int {
	if !l.Enforced() {
		return -1
	}
	if used >= l.N {
		return 0
	}
	return l.N - used
}

// Feature describes one capability bundled in a plan.
type Feature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Included    bool   `json:"included"`
	Limit       int    `json:"limit,omitempty"`     // 0 means no numeric cap
	Unlimited   bool   `json:"unlimited,omitempty"` // overrides Limit when set
}

// PlanDetails is one catalog entry. Price and billing period are display-only.
type PlanDetails struct {
	ID            Plan      `json:"id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"` // whole rupees
	Currency      string    `json:"currency"`
	BillingPeriod string    `json:"billing_period"`
	Description   string    `json:"description"`
	Popular       bool      `json:"popular,omitempty"`
	Features      []Feature `json:"features"`
}

// DisplayPrice formats the plan price in its currency for the Indian locale.
func (p PlanDetails) DisplayPrice() string {
	unit, err := currency.ParseISO(p.Currency)
	if err != nil {
		return fmt.Sprintf("%d %s", p.Price, p.Currency)
	}
	printer := message.NewPrinter(language.MustParse("en-IN"))
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(p.Price)))
}

// FeatureByID returns the plan's descriptor for the given feature id.
func (p PlanDetails) FeatureByID(featureID string) (Feature, bool) {
	for _, f := range p.Features {
		if f.ID == featureID {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureIDs returns the ordered feature id list, used as the subscription
// snapshot at plan-assignment time.
func (p PlanDetails) FeatureIDs() []string {
	ids := make([]string, len(p.Features))
	for i, f := range p.Features {
		ids[i] = f.ID
	}
	return ids
}

// Catalog lists all plans in declaration order.
var Catalog = []PlanDetails{
	{
		ID:            PlanFree,
		Name:          "Free",
		Price:         0,
		Currency:      "INR",
		BillingPeriod: "month",
		Description:   "Perfect for students getting started with career guidance",
		Features: []Feature{
			{ID: "basic_assessments", Name: "Basic Assessments", Description: "Access to 3 career assessment tests", Included: true, Limit: 3},
			{ID: "college_search", Name: "College Search", Description: "Search and browse college information", Included: true},
			{ID: "career_info", Name: "Career Information", Description: "Basic career information and details", Included: true},
			{ID: "scholarship_basic", Name: "Scholarship Listings", Description: "Access to basic scholarship information", Included: true},
			{ID: "ai_chat_limited", Name: "AI Career Chat", Description: "5 AI-powered career guidance conversations per month", Included: true, Limit: 5},
			{ID: "profile_basic", Name: "Basic Profile", Description: "Create and manage basic profile", Included: true},
			{ID: "export_basic", Name: "Basic Export", Description: "Export assessment results", Included: true},
		},
	},
	{
		ID:            PlanPro,
		Name:          "Pro",
		Price:         299,
		Currency:      "INR",
		BillingPeriod: "month",
		Description:   "Advanced features for serious career planning",
		Popular:       true,
		Features: []Feature{
			{ID: "unlimited_assessments", Name: "Unlimited Assessments", Description: "Access to all career assessment tests", Included: true, Unlimited: true},
			{ID: "advanced_college_search", Name: "Advanced College Search", Description: "Advanced filters, comparison tools, and detailed analytics", Included: true},
			{ID: "career_roadmap", Name: "Career Roadmaps", Description: "Detailed career progression paths and skill development plans", Included: true},
			{ID: "scholarship_advanced", Name: "Advanced Scholarship Search", Description: "AI-powered scholarship matching and application tracking", Included: true},
			{ID: "ai_chat_unlimited", Name: "Unlimited AI Chat", Description: "Unlimited AI-powered career guidance conversations", Included: true, Unlimited: true},
			{ID: "profile_advanced", Name: "Advanced Profile", Description: "Detailed profile with portfolio and achievements", Included: true},
			{ID: "export_advanced", Name: "Advanced Export", Description: "Export in multiple formats", Included: true},
			{ID: "priority_support", Name: "Priority Support", Description: "Priority email support within 24 hours", Included: true},
			{ID: "webinar_access", Name: "Exclusive Webinars", Description: "Access to monthly career guidance webinars", Included: true},
		},
	},
	{
		ID:            PlanMax,
		Name:          "Max",
		Price:         599,
		Currency:      "INR",
		BillingPeriod: "month",
		Description:   "Complete career guidance with personal mentorship",
		Features: []Feature{
			{ID: "everything_pro", Name: "Everything in Pro", Description: "All Pro features included", Included: true},
			{ID: "personal_mentor", Name: "Personal Career Mentor", Description: "1-on-1 sessions with industry experts (2 sessions/month)", Included: true, Limit: 2},
			{ID: "resume_review", Name: "Resume Review", Description: "Professional resume review and optimization", Included: true, Limit: 3},
			{ID: "interview_prep", Name: "Interview Preparation", Description: "Mock interviews and preparation sessions", Included: true, Limit: 2},
			{ID: "job_alerts", Name: "Smart Job Alerts", Description: "AI-powered job recommendations and alerts", Included: true},
			{ID: "networking_events", Name: "Networking Events", Description: "Access to exclusive networking events and meetups", Included: true},
			{ID: "certification_tracks", Name: "Certification Tracks", Description: "Guided certification and skill development tracks", Included: true},
			{ID: "phone_support", Name: "Phone Support", Description: "Direct phone support with career experts", Included: true},
			{ID: "custom_reports", Name: "Custom Reports", Description: "Detailed career analysis and progress reports", Included: true},
		},
	},
}

// PlanByID looks up a catalog entry. Unknown plans return ok=false rather
// than an error; absence is the failure signal throughout feature lookups.
func PlanByID(plan Plan) (PlanDetails, bool) {
	for _, p := range Catalog {
		if p.ID == plan {
			return p, true
		}
	}
	return PlanDetails{}, false
}

// HasFeature reports whether the plan bundles the feature and marks it
// included. Unknown plan or feature ids yield false, never an error.
func HasFeature(plan Plan, featureID string) bool {
	p, ok := PlanByID(plan)
	if !ok {
		return false
	}
	f, ok := p.FeatureByID(featureID)
	return ok && f.Included
}

// FeatureLimit returns the cap for a feature under a plan. Unknown or
// not-included features return NoLimit, as does an included feature with no
// numeric cap. Callers treat NoLimit as "no enforced cap".
func FeatureLimit(plan Plan, featureID string) Limit {
	p, ok := PlanByID(plan)
	if !ok {
		return NoLimit
	}
	f, ok := p.FeatureByID(featureID)
	if !ok || !f.Included {
		return NoLimit
	}
	if f.Unlimited {
		return Limit{Unlimited: true}
	}
	if f.Limit > 0 {
		return Limit{Capped: true, N: f.Limit}
	}
	return NoLimit
}
