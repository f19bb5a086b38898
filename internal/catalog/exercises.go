package catalog

// exercises is the catalog, keyed region -> condition. Slice order within a
// pair is the display order.
var exercises = map[string]map[string][]Exercise{
	RegionAnkle: {
		"dorsiflexed": {
			{
				Title: "Ankle Dorsiflexion Stretch",
				Description: []string{
					"1. Sit on the floor with your legs extended",
					"2. Point your toes forward and down",
					"3. Hold for 15-30 seconds",
					"4. Repeat 3 times",
				},
				Tips:       "Move into the stretch slowly and keep your knees relaxed",
				Duration:   "3 minutes",
				Difficulty: "beginner",
				Region:     RegionAnkle,
				Condition:  "dorsiflexed",
				ImageURL:   "/images/exercises/ankle-dorsiflexion.jpg",
			},
		},
		"plantar flexed": {
			{
				Title: "Plantar Flexion Exercise",
				Description: []string{
					"1. Stand on the edge of a step",
					"2. Lower your heels below the step level",
					"3. Rise up on your toes",
					"4. Hold for 2 seconds",
					"5. Repeat 15 times",
				},
				Tips:       "Hold a rail for balance and keep the movement controlled",
				Duration:   "4 minutes",
				Difficulty: "beginner",
				Region:     RegionAnkle,
				Condition:  "plantar flexed",
				ImageURL:   "/images/exercises/plantar-flexion.jpg",
			},
		},
	},
	RegionFoot: {
		"supinated": {
			{
				Title: "Foot Supination Correction",
				Description: []string{
					"1. Stand with feet hip-width apart",
					"2. Roll your feet inward slightly",
					"3. Hold for 5 seconds",
					"4. Release and repeat 10 times",
				},
				Tips:       "Keep your weight spread evenly across both feet",
				Duration:   "3 minutes",
				Difficulty: "intermediate",
				Region:     RegionFoot,
				Condition:  "supinated",
				ImageURL:   "/images/exercises/foot-supination.jpg",
			},
		},
		"pronated": {
			{
				Title: "Pronation Control Exercise",
				Description: []string{
					"1. Stand on one foot",
					"2. Focus on lifting your arch",
					"3. Hold for 10 seconds",
					"4. Switch feet and repeat 10 times each",
				},
				Tips:       "Use a wall for balance if needed",
				Duration:   "4 minutes",
				Difficulty: "intermediate",
				Region:     RegionFoot,
				Condition:  "pronated",
				ImageURL:   "/images/exercises/pronation-control.jpg",
			},
		},
	},
	RegionSpine: {
		"lordosis": {
			{
				Title: "Child's Pose",
				Description: []string{
					"1. Start by kneeling on your mat",
					"2. Sit back on your heels",
					"3. Stretch your arms forward on the mat",
					"4. Hold for 30 seconds while breathing deeply",
					"5. Repeat 3-5 times",
				},
				Tips:       "Keep your back relaxed and focus on deep breathing",
				Duration:   "5 minutes",
				Difficulty: "beginner",
				Region:     RegionSpine,
				Condition:  "lordosis",
				ImageURL:   "https://images.unsplash.com/photo-1485727749690-d091e8284ef3?q=80&w=1780&auto=format&fit=crop",
			},
			{
				Title: "Cat-Cow Stretch",
				Description: []string{
					"1. Start on hands and knees",
					"2. Inhale: Look up and arch your back",
					"3. Exhale: Round your spine and look down",
					"4. Move slowly between positions",
					"5. Repeat 10 times",
				},
				Tips:       "Keep your movements slow and controlled",
				Duration:   "3-5 minutes",
				Difficulty: "beginner",
				Region:     RegionSpine,
				Condition:  "lordosis",
				ImageURL:   "https://images.unsplash.com/photo-1599901860904-17e6ed7083a0?q=80&w=1780&auto=format&fit=crop",
			},
			{
				Title: "Bridge Pose",
				Description: []string{
					"1. Lie on your back with knees bent and feet flat",
					"2. Lift hips toward the ceiling",
					"3. Hold for 5 seconds and lower back down",
					"4. Repeat 10-15 times",
				},
				Tips:       "Engage your glutes and avoid overarching your lower back",
				Duration:   "4 minutes",
				Difficulty: "intermediate",
				Region:     RegionSpine,
				Condition:  "lordosis",
				ImageURL:   "https://images.unsplash.com/photo-1599058917217-a12d52e8a874?q=80&w=1780&auto=format&fit=crop",
			},
		},
		"kyphosis": {
			{
				Title: "Thoracic Foam Rolling",
				Description: []string{
					"1. Place foam roller under upper back",
					"2. Support head with hands",
					"3. Gently roll up and down",
					"4. Pause on tight spots",
					"5. Roll for 1-2 minutes",
				},
				Tips:       "If you feel pain, reduce pressure by supporting more weight with your feet",
				Duration:   "5 minutes",
				Difficulty: "intermediate",
				Region:     RegionSpine,
				Condition:  "kyphosis",
				ImageURL:   "https://images.unsplash.com/photo-1517130038641-a774d04afb3c?q=80&w=1780&auto=format&fit=crop",
			},
			{
				Title: "Wall Angels",
				Description: []string{
					"1. Stand with your back flat against a wall",
					"2. Raise arms to shoulder height",
					"3. Slowly slide arms up and down against the wall",
					"4. Keep your back and head in contact with the wall",
					"5. Repeat 10 times",
				},
				Tips:       "Focus on keeping your movements smooth and controlled",
				Duration:   "4 minutes",
				Difficulty: "beginner",
				Region:     RegionSpine,
				Condition:  "kyphosis",
				ImageURL:   "https://images.unsplash.com/photo-1599058917657-c1086f742150?q=80&w=1780&auto=format&fit=crop",
			},
			{
				Title: "Reverse Tabletop Stretch",
				Description: []string{
					"1. Sit on the floor with your hands behind you and feet flat",
					"2. Push through your hands and lift hips toward the ceiling",
					"3. Hold for 10 seconds",
					"4. Lower back down slowly",
					"5. Repeat 8-10 times",
				},
				Tips:       "Keep your shoulders relaxed and avoid locking your elbows",
				Duration:   "5 minutes",
				Difficulty: "intermediate",
				Region:     RegionSpine,
				Condition:  "kyphosis",
				ImageURL:   "https://images.unsplash.com/photo-1599058920014-961e4ebc9a68?q=80&w=1780&auto=format&fit=crop",
			},
		},
	},
	RegionNeck: {
		"forward head": {
			{
				Title: "Neck Rotations",
				Description: []string{
					"1. Sit or stand with good posture",
					"2. Slowly turn head to the right",
					"3. Hold for 5 seconds",
					"4. Return to center",
					"5. Repeat on left side",
					"6. Do 10 repetitions each side",
				},
				Tips:       "Keep movements gentle and stop if you feel pain",
				Duration:   "3 minutes",
				Difficulty: "beginner",
				Region:     RegionNeck,
				Condition:  "forward head",
				ImageURL:   "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?q=80&w=1780&auto=format&fit=crop",
			},
			{
				Title: "Chin Tucks",
				Description: []string{
					"1. Sit up straight and look forward",
					"2. Gently pull your chin toward your chest",
					"3. Hold for 5 seconds",
					"4. Return to starting position",
					"5. Repeat 10 times",
				},
				Tips:       "Keep your shoulders relaxed and avoid tilting your head up or down",
				Duration:   "2 minutes",
				Difficulty: "beginner",
				Region:     RegionNeck,
				Condition:  "forward head",
				ImageURL:   "https://images.unsplash.com/photo-1557332190-d6fd65c125ae?q=80&w=1780&auto=format&fit=crop",
			},
			{
				Title: "Upper Trapezius Stretch",
				Description: []string{
					"1. Sit or stand with good posture",
					"2. Tilt head toward your right shoulder",
					"3. Hold for 10-15 seconds",
					"4. Repeat on the left side",
					"5. Perform 3-5 repetitions per side",
				},
				Tips:       "Avoid shrugging your shoulders; keep them relaxed",
				Duration:   "5 minutes",
				Difficulty: "intermediate",
				Region:     RegionNeck,
				Condition:  "forward head",
				ImageURL:   "https://images.unsplash.com/photo-1527018601619-a508a2be00cd?q=80&w=1780&auto=format&fit=crop",
			},
		},
	},
}
