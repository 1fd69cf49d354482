package registry

import "example.com/signup/internal/domain"

// seedActivities returns the fixed activity catalogue the registry starts
// with. Participant lists start empty but non-nil so they serialize as [].
func seedActivities() map[string]*domain.Activity {
	return map[string]*domain.Activity{
		"Basketball Team": {
			Description:     "Join the basketball team and compete in local tournaments",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		"Soccer Club": {
			Description:     "Practice soccer skills and participate in matches",
			Schedule:        "Tuesdays and Thursdays, 5:00 PM - 7:00 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		"Art Club": {
			Description:     "Explore various art techniques and create projects",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{},
		},
		"Drama Society": {
			Description:     "Participate in theater productions and improve acting skills",
			Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{},
		},
		"Debate Club": {
			Description:     "Engage in debates and improve public speaking skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		"Science Club": {
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Tuesdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{},
		},
	}
}
