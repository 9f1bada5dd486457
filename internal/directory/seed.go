package directory

import "github.com/mergington/activities/internal/model"

// Seed はプロセス起動時にディレクトリへ投入する固定の活動セットを返す。
// 参加者リストの並びは申込順を表すため変更しないこと。
func Seed() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice basketball skills and compete in inter-school games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "liam@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Improve swimming techniques and train for competitions",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Explore theater arts and perform in school plays",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"isabella@mergington.edu", "mia@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Create visual art with various mediums including painting and sculpture",
			Schedule:        "Wednesdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ethan@mergington.edu", "charlotte@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Prepare for science competitions and conduct experiments",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"william@mergington.edu", "amelia@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through debates",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"benjamin@mergington.edu", "harper@mergington.edu"},
		},
	}
}
