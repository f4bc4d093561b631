// Package kernel holds the value objects shared by every aggregate of the engine:
// identifiers (UUID), HHmm-encoded time frames (TimeFrame, EncodeTime, DecodeTime,
// StartOfSlot), the UTC+7 business clock and order weights.
package kernel
