// Package common contains shared constants and sentinel errors used across
// the auth service components.
package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// session token on outbound requests.
const SessionTokenHeaderName = "session_token"

// MaintenanceSettingKey is the settings-table key that gates non-admin
// logins while maintenance mode is on.
const MaintenanceSettingKey = "maintenance_on"
