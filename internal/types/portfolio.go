// Package types provides type definitions for structured data used throughout the portfolio-studio system.
package types

import (
	"fmt"
	"time"
)

// SectionType identifies the kind of content a portfolio section holds.
type SectionType string

// Section type constants define the fixed set of portfolio section kinds.
const (
	SectionSummary       SectionType = "summary"
	SectionExperience    SectionType = "experience"
	SectionProject       SectionType = "project"
	SectionCertification SectionType = "certification"
	SectionSkills        SectionType = "skills"
	SectionEducation     SectionType = "education"
	SectionContact       SectionType = "contact"
	SectionCustom        SectionType = "custom"
)

// validSectionTypes is the closed set accepted from callers and from model output.
var validSectionTypes = map[SectionType]bool{
	SectionSummary:       true,
	SectionExperience:    true,
	SectionProject:       true,
	SectionCertification: true,
	SectionSkills:        true,
	SectionEducation:     true,
	SectionContact:       true,
	SectionCustom:        true,
}

// IsValid reports whether the section type belongs to the fixed enumeration.
func (s SectionType) IsValid() bool {
	return validSectionTypes[s]
}

// SectionTypes returns the full enumeration of section types in canonical order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionSummary, SectionExperience, SectionProject, SectionCertification,
		SectionSkills, SectionEducation, SectionContact, SectionCustom,
	}
}

// Tone identifies a writing tone for rewrite operations.
type Tone string

// Tone constants define the fixed set of supported rewrite tones.
const (
	ToneProfessional Tone = "professional"
	ToneFormal       Tone = "formal"
	ToneFriendly     Tone = "friendly"
	ToneConfident    Tone = "confident"
	ToneCreative     Tone = "creative"
	ToneTechnical    Tone = "technical"
)

var validTones = map[Tone]bool{
	ToneProfessional: true,
	ToneFormal:       true,
	ToneFriendly:     true,
	ToneConfident:    true,
	ToneCreative:     true,
	ToneTechnical:    true,
}

// IsValid reports whether the tone belongs to the fixed enumeration.
func (t Tone) IsValid() bool {
	return validTones[t]
}

// Tones returns the full enumeration of supported tones.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneFormal, ToneFriendly, ToneConfident, ToneCreative, ToneTechnical}
}

// Section is a single block of portfolio content.
type Section struct {
	Type      SectionType `json:"type"`
	Content   string      `json:"content"`
	Order     int         `json:"order"`
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

// PortfolioSnapshot is a read-only view of a user's portfolio, fetched per request.
// The pipeline never mutates it; write-back after rewrite/generate is the caller's job.
type PortfolioSnapshot struct {
	UserID   string    `json:"user_id"`
	Sections []Section `json:"sections"`
	Template string    `json:"template"`
	Theme    string    `json:"theme"`
}

// SectionOfType returns the first section of the given type, or nil.
func (p *PortfolioSnapshot) SectionOfType(t SectionType) *Section {
	for i := range p.Sections {
		if p.Sections[i].Type == t {
			return &p.Sections[i]
		}
	}
	return nil
}

// SectionTypesPresent returns the distinct section types in snapshot order.
func (p *PortfolioSnapshot) SectionTypesPresent() []SectionType {
	seen := make(map[SectionType]bool)
	var present []SectionType
	for _, s := range p.Sections {
		if !seen[s.Type] {
			seen[s.Type] = true
			present = append(present, s.Type)
		}
	}
	return present
}

// Validate checks structural invariants of a snapshot supplied by a caller.
func (p *PortfolioSnapshot) Validate() error {
	for i, s := range p.Sections {
		if !s.Type.IsValid() {
			return fmt.Errorf("section %d: unknown section type %q", i, s.Type)
		}
	}
	return nil
}
