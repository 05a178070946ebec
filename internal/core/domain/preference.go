package domain

// PreferenceKeyDisplayCurrency is the preference-store key under which the
// user's chosen display currency is persisted.
const PreferenceKeyDisplayCurrency = "display_currency"
