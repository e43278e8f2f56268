// Package state provides a lightweight FSM/session manager for Telegram bots.
// One session exists per user identity; a lookup miss creates the session in
// the idle step with empty scratch. Sessions are held in memory only and may
// be aged out by an idle-TTL sweep.
package state
