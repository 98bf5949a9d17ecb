package model

// OrganizationMetadata is the narrow, typed view of the provider's
// public metadata on an organization. Fields the provider omitted are
// nil/empty and leave the defaults in place. Untyped metadata never
// travels past this boundary.
type OrganizationMetadata struct {
	Timezone         *string `json:"timezone,omitempty"`
	WorkWeek         []int   `json:"workWeek,omitempty"`
	SubscriptionTier *string `json:"subscriptionTier,omitempty"`
}

// ApplyTo overrides the organization's seeded defaults with whatever
// the metadata carries. Used on create only; update events do not
// touch settings or subscription.
func (m *OrganizationMetadata) ApplyTo(org *Organization) {
	if m == nil {
		return
	}
	if m.Timezone != nil {
		org.Settings.Timezone = *m.Timezone
	}
	if len(m.WorkWeek) > 0 {
		org.Settings.WorkWeek = m.WorkWeek
	}
	if m.SubscriptionTier != nil {
		org.Subscription.Tier = *m.SubscriptionTier
	}
}
