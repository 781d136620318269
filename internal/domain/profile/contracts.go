package profile

// ProfileService exposes the validated, immutable profile to the rest of the
// application. Implementations must reject an invalid profile at
// construction time; after that the snapshot never changes for the life of
// the process.
type ProfileService interface {
	// Profile returns the validated profile snapshot.
	Profile() *ClubProfile

	// MorningSlots returns the legacy two-slot view over the session list.
	MorningSlots() (Slot, Slot, error)
}
