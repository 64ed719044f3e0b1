package recommend

// StreamBuckets classifies the stream-selector assessment into the
// class 11/12 stream a student should pick. Declaration order doubles as
// the tie-break order.
var StreamBuckets = []Bucket{
	{
		ID: "science",
		Tags: []string{
			"science", "practical", "mathematical", "engineering",
			"systematic", "science_club", "experimenting", "curiosity",
		},
		Payload: Payload{
			Title:       "Science (PCM/PCB)",
			Description: "Perfect for students interested in engineering, medicine, or research",
			Careers:     []string{"Engineer", "Doctor", "Scientist", "Researcher"},
			Subjects:    []string{"Physics", "Chemistry", "Mathematics/Biology", "English"},
		},
	},
	{
		ID: "commerce",
		Tags: []string{
			"commerce", "theoretical", "analytical", "business",
			"collaborative", "debate", "reading", "achievement",
		},
		Payload: Payload{
			Title:       "Commerce",
			Description: "Ideal for students interested in business, finance, and economics",
			Careers:     []string{"CA", "MBA", "Banking", "Entrepreneur"},
			Subjects:    []string{"Accountancy", "Business Studies", "Economics", "Mathematics"},
		},
	},
	{
		ID: "arts",
		Tags: []string{
			"arts", "visual", "creative", "social", "intuitive",
			"socializing", "creating", "helping", "creativity",
		},
		Payload: Payload{
			Title:       "Arts/Humanities",
			Description: "Great for students interested in social sciences, literature, and creative fields",
			Careers:     []string{"Journalist", "Lawyer", "Teacher", "Writer"},
			Subjects:    []string{"History", "Political Science", "Literature", "Psychology"},
		},
	},
}

// CareerBuckets classifies the career-compass assessment into a broad
// industry direction.
var CareerBuckets = []Bucket{
	{
		ID: "technology",
		Tags: []string{
			"remote", "growth", "technical", "flexible", "moderate",
			"technology", "systematic", "expert",
		},
		Payload: Payload{
			Title:       "Technology",
			Description: "You're drawn to innovation and problem-solving in the tech world",
			Careers:     []string{"Software Engineer", "Data Scientist", "Product Manager", "UX Designer"},
			Skills:      []string{"Programming", "Analytics", "Problem Solving", "Innovation"},
			SalaryRange: "₹6L - ₹25L",
			Growth:      "Very High",
		},
	},
	{
		ID: "healthcare",
		Tags: []string{
			"impact", "client", "social", "balanced", "communication",
			"very_important", "healthcare", "collaborative", "mentor",
		},
		Payload: Payload{
			Title:       "Healthcare",
			Description: "You want to make a meaningful impact on people's lives",
			Careers:     []string{"Doctor", "Nurse", "Medical Researcher", "Healthcare Administrator"},
			Skills:      []string{"Empathy", "Medical Knowledge", "Communication", "Critical Thinking"},
			SalaryRange: "₹5L - ₹50L",
			Growth:      "High",
		},
	},
	{
		ID: "business",
		Tags: []string{
			"money", "lead", "strategic", "intense", "leadership",
			"important", "finance", "resilient", "entrepreneur",
		},
		Payload: Payload{
			Title:       "Business",
			Description: "You're driven by business success and strategic thinking",
			Careers:     []string{"Investment Banker", "Management Consultant", "Marketing Manager", "Entrepreneur"},
			Skills:      []string{"Leadership", "Analytics", "Negotiation", "Strategic Planning"},
			SalaryRange: "₹8L - ₹40L",
			Growth:      "High",
		},
	},
	{
		ID: "education",
		Tags: []string{
			"creative", "recognition", "independent", "variable", "low",
			"education", "leader",
		},
		Payload: Payload{
			Title:       "Education",
			Description: "You're passionate about learning and helping others grow",
			Careers:     []string{"Teacher", "Professor", "Educational Consultant", "Training Manager"},
			Skills:      []string{"Communication", "Patience", "Subject Expertise", "Mentoring"},
			SalaryRange: "₹3L - ₹15L",
			Growth:      "Stable",
		},
	},
}
