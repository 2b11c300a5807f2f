package model

import "time"

// Plan-status values carried by the intake channel. HasPlan is free text in
// the store; anything other than PlanYes/PlanNo is treated as not informed.
const (
	PlanYes = "Sim"
	PlanNo  = "Não"
)

// NotInformed is the fallback label for absent or empty categorical fields.
const NotInformed = "Não informado"

// Lead is one inbound sales lead as stored by the intake channel.
// Every field except ID and CreatedAt is optional free text; an empty
// string means the field was not informed. Records are never updated in
// place: they are inserted once and only removed by a bulk reseed.
type Lead struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nome"`
	Email      string    `json:"email"`
	Source     string    `json:"source"`
	Campaign   string    `json:"campanha"`
	HasPlan    string    `json:"possui_plano"`
	PlanType   string    `json:"plano_tipo"`
	AgeBracket string    `json:"idade"`
	Specialist string    `json:"especialista"`
	Summary    string    `json:"resumo"`
	WhatsApp   string    `json:"whatsapp"`
	CreatedAt  time.Time `json:"created_at"`
}

// Converted reports whether the lead counts as a conversion.
func (l Lead) Converted() bool {
	return l.HasPlan == PlanYes
}

// CampaignLabel returns the campaign name, falling back to NotInformed.
func (l Lead) CampaignLabel() string {
	if l.Campaign == "" {
		return NotInformed
	}
	return l.Campaign
}

// AgeLabel returns the age bracket, falling back to NotInformed.
func (l Lead) AgeLabel() string {
	if l.AgeBracket == "" {
		return NotInformed
	}
	return l.AgeBracket
}
