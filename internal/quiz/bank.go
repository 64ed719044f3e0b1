package quiz

var streamQuestions = []Question{
	{
		Prompt: "What subjects do you enjoy studying the most?",
		Options: []Option{
			{Value: "science", Label: "Mathematics, Physics, Chemistry"},
			{Value: "commerce", Label: "Economics, Business Studies, Accountancy"},
			{Value: "arts", Label: "History, Literature, Political Science"},
			{Value: "mixed", Label: "A combination of different subjects"},
		},
	},
	{
		Prompt: "How do you prefer to learn new concepts?",
		Options: []Option{
			{Value: "practical", Label: "Through experiments and hands-on activities"},
			{Value: "theoretical", Label: "Through reading and theoretical understanding"},
			{Value: "visual", Label: "Through diagrams, charts, and visual aids"},
			{Value: "discussion", Label: "Through group discussions and debates"},
		},
	},
	{
		Prompt: "What type of problems do you enjoy solving?",
		Options: []Option{
			{Value: "mathematical", Label: "Mathematical equations and calculations"},
			{Value: "analytical", Label: "Logical reasoning and analysis"},
			{Value: "creative", Label: "Creative writing and artistic problems"},
			{Value: "social", Label: "Social issues and human behavior"},
		},
	},
	{
		Prompt: "What are your career aspirations?",
		Options: []Option{
			{Value: "engineering", Label: "Engineering and Technology"},
			{Value: "medicine", Label: "Medicine and Healthcare"},
			{Value: "business", Label: "Business and Management"},
			{Value: "arts", Label: "Arts, Literature, or Social Sciences"},
		},
	},
	{
		Prompt: "How do you handle challenges?",
		Options: []Option{
			{Value: "systematic", Label: "Break them down into smaller parts"},
			{Value: "intuitive", Label: "Trust my instincts and creativity"},
			{Value: "collaborative", Label: "Seek help and work with others"},
			{Value: "persistent", Label: "Keep trying until I find a solution"},
		},
	},
	{
		Prompt: "What extracurricular activities interest you?",
		Options: []Option{
			{Value: "science_club", Label: "Science clubs and competitions"},
			{Value: "debate", Label: "Debate and public speaking"},
			{Value: "arts", Label: "Music, drama, or visual arts"},
			{Value: "sports", Label: "Sports and physical activities"},
		},
	},
	{
		Prompt: "How do you prefer to spend your free time?",
		Options: []Option{
			{Value: "reading", Label: "Reading books and articles"},
			{Value: "experimenting", Label: "Building or experimenting with things"},
			{Value: "socializing", Label: "Spending time with friends and family"},
			{Value: "creating", Label: "Creating art, music, or writing"},
		},
	},
	{
		Prompt: "What motivates you to study?",
		Options: []Option{
			{Value: "curiosity", Label: "Curiosity and desire to understand"},
			{Value: "achievement", Label: "Achievement and recognition"},
			{Value: "helping", Label: "Helping others and making a difference"},
			{Value: "creativity", Label: "Expressing creativity and innovation"},
		},
	},
}

var careerQuestions = []Question{
	{
		Prompt: "What type of work environment do you prefer?",
		Options: []Option{
			{Value: "office", Label: "Traditional office setting with structured hours"},
			{Value: "remote", Label: "Remote work with flexible schedule"},
			{Value: "field", Label: "Field work and travel opportunities"},
			{Value: "creative", Label: "Creative and collaborative spaces"},
		},
	},
	{
		Prompt: "What motivates you most in a career?",
		Options: []Option{
			{Value: "money", Label: "High salary and financial security"},
			{Value: "impact", Label: "Making a positive impact on society"},
			{Value: "growth", Label: "Continuous learning and personal growth"},
			{Value: "recognition", Label: "Recognition and leadership opportunities"},
		},
	},
	{
		Prompt: "How do you prefer to work with others?",
		Options: []Option{
			{Value: "team", Label: "As part of a collaborative team"},
			{Value: "independent", Label: "Independently with minimal supervision"},
			{Value: "lead", Label: "Leading and managing others"},
			{Value: "client", Label: "Working directly with clients/customers"},
		},
	},
	{
		Prompt: "What type of challenges do you enjoy?",
		Options: []Option{
			{Value: "technical", Label: "Technical and analytical problems"},
			{Value: "creative", Label: "Creative and innovative challenges"},
			{Value: "social", Label: "Social and interpersonal challenges"},
			{Value: "strategic", Label: "Strategic and planning challenges"},
		},
	},
	{
		Prompt: "What is your ideal work-life balance?",
		Options: []Option{
			{Value: "balanced", Label: "Stable 9-5 with weekends off"},
			{Value: "flexible", Label: "Flexible hours and remote options"},
			{Value: "intense", Label: "Intense periods with longer breaks"},
			{Value: "variable", Label: "Variable schedule based on projects"},
		},
	},
	{
		Prompt: "What skills do you want to develop most?",
		Options: []Option{
			{Value: "technical", Label: "Technical and specialized skills"},
			{Value: "leadership", Label: "Leadership and management skills"},
			{Value: "communication", Label: "Communication and presentation skills"},
			{Value: "creative", Label: "Creative and artistic skills"},
		},
	},
	{
		Prompt: "How important is job security to you?",
		Options: []Option{
			{Value: "very_important", Label: "Very important - prefer stable, long-term positions"},
			{Value: "important", Label: "Important - but open to calculated risks"},
			{Value: "moderate", Label: "Moderately important - value growth over security"},
			{Value: "low", Label: "Not very important - prefer dynamic, changing roles"},
		},
	},
	{
		Prompt: "What type of industry interests you most?",
		Options: []Option{
			{Value: "technology", Label: "Technology and innovation"},
			{Value: "healthcare", Label: "Healthcare and wellness"},
			{Value: "finance", Label: "Finance and business"},
			{Value: "education", Label: "Education and social impact"},
		},
	},
	{
		Prompt: "How do you handle stress and pressure?",
		Options: []Option{
			{Value: "systematic", Label: "Break down problems systematically"},
			{Value: "collaborative", Label: "Seek support from colleagues and mentors"},
			{Value: "creative", Label: "Use creativity and innovation to solve issues"},
			{Value: "resilient", Label: "Stay focused and push through challenges"},
		},
	},
	{
		Prompt: "What is your long-term career vision?",
		Options: []Option{
			{Value: "expert", Label: "Become an expert in a specific field"},
			{Value: "entrepreneur", Label: "Start my own business or venture"},
			{Value: "leader", Label: "Rise to senior leadership positions"},
			{Value: "mentor", Label: "Mentor and develop others in my field"},
		},
	},
}
