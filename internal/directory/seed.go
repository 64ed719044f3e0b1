package directory

import "github.com/ankitpatil/disha/internal/recommend"

var colleges = []College{
	{
		ID:          1,
		Name:        "Indian Institute of Technology Delhi",
		Location:    "New Delhi",
		Type:        "Government",
		Stream:      "Engineering",
		Rating:      4.8,
		Students:    8500,
		Established: 1961,
		Fees: Fees{
			Tuition: "₹2.5L - ₹4L",
			Hostel:  "₹1L - ₹1.5L",
			Total:   "₹3.5L - ₹5.5L",
		},
		Description: "Premier engineering institute known for excellence in technology and innovation.",
		Website:     "https://www.iitd.ac.in",
		Email:       "info@iitd.ac.in",
		Phone:       "+91-11-2659-7135",
		Address:     "Hauz Khas, New Delhi - 110016",
		Courses: []Course{
			{Name: "Computer Science Engineering", Duration: "4 years", Seats: 120, Cutoff: "98.5%"},
			{Name: "Mechanical Engineering", Duration: "4 years", Seats: 150, Cutoff: "97.2%"},
			{Name: "Electrical Engineering", Duration: "4 years", Seats: 100, Cutoff: "97.8%"},
			{Name: "Civil Engineering", Duration: "4 years", Seats: 80, Cutoff: "96.5%"},
		},
		Facilities: []string{
			"24/7 Library with 2M+ books",
			"Modern Computer Labs",
			"Sports Complex",
			"Hostel Accommodation",
			"Medical Center",
			"Cafeteria & Food Courts",
			"WiFi Campus",
			"Research Labs",
		},
		Placement: Placement{
			Average:    "₹18L",
			Highest:    "₹1.2Cr",
			Companies:  []string{"Google", "Microsoft", "Amazon", "Goldman Sachs", "McKinsey"},
			Percentage: "100%",
		},
		Rankings: []Ranking{
			{Organization: "NIRF", Rank: "1", Year: 2023},
			{Organization: "QS World", Rank: "185", Year: 2023},
			{Organization: "Times Higher Education", Rank: "201-250", Year: 2023},
		},
		Admission: Admission{
			Process:      "JEE Advanced",
			Requirements: []string{"Class 12 with 75%+", "JEE Advanced qualified", "Age 17-25"},
			Documents:    []string{"JEE Score Card", "Class 12 Marksheet", "Identity Proof", "Passport Photos"},
		},
	},
	{
		ID:          2,
		Name:        "Shri Ram College of Commerce",
		Location:    "New Delhi",
		Type:        "Government",
		Stream:      "Commerce",
		Rating:      4.6,
		Students:    3200,
		Established: 1926,
		Fees: Fees{
			Tuition: "₹30K - ₹50K",
			Hostel:  "₹80K - ₹1L",
			Total:   "₹1.1L - ₹1.5L",
		},
		Description: "India's leading commerce college with an outstanding placement record.",
		Website:     "https://www.srcc.edu",
		Email:       "principal@srcc.du.ac.in",
		Phone:       "+91-11-2766-7905",
		Address:     "Maurice Nagar, New Delhi - 110007",
		Courses: []Course{
			{Name: "B.Com (Hons)", Duration: "3 years", Seats: 626, Cutoff: "98.75%"},
			{Name: "B.A. Economics (Hons)", Duration: "3 years", Seats: 123, Cutoff: "98.5%"},
		},
		Facilities: []string{
			"Central Library",
			"Auditorium",
			"Sports Grounds",
			"Hostel Accommodation",
			"Placement Cell",
		},
		Placement: Placement{
			Average:    "₹9L",
			Highest:    "₹35L",
			Companies:  []string{"Deloitte", "KPMG", "EY", "Bain & Company"},
			Percentage: "95%",
		},
		Rankings: []Ranking{
			{Organization: "NIRF", Rank: "11", Year: 2023},
			{Organization: "India Today", Rank: "1", Year: 2023},
		},
		Admission: Admission{
			Process:      "CUET",
			Requirements: []string{"Class 12 with 95%+", "CUET qualified"},
			Documents:    []string{"CUET Score Card", "Class 12 Marksheet", "Identity Proof"},
		},
	},
	{
		ID:          3,
		Name:        "Christ University",
		Location:    "Bangalore",
		Type:        "Private",
		Stream:      "Arts",
		Rating:      4.3,
		Students:    12000,
		Established: 1969,
		Fees: Fees{
			Tuition: "₹1L - ₹2L",
			Hostel:  "₹1L - ₹1.2L",
			Total:   "₹2L - ₹3.2L",
		},
		Description: "Multidisciplinary private university known for humanities and liberal arts programmes.",
		Website:     "https://christuniversity.in",
		Email:       "mail@christuniversity.in",
		Phone:       "+91-80-4012-9100",
		Address:     "Hosur Road, Bangalore - 560029",
		Courses: []Course{
			{Name: "B.A. Journalism", Duration: "3 years", Seats: 180, Cutoff: "85%"},
			{Name: "B.A. Psychology", Duration: "3 years", Seats: 240, Cutoff: "88%"},
		},
		Facilities: []string{
			"Knowledge Centre",
			"Media Studios",
			"Counselling Centre",
			"Hostel Accommodation",
		},
		Placement: Placement{
			Average:    "₹5L",
			Highest:    "₹18L",
			Companies:  []string{"Times Group", "Deloitte", "Accenture"},
			Percentage: "85%",
		},
		Rankings: []Ranking{
			{Organization: "NIRF", Rank: "60", Year: 2023},
		},
		Admission: Admission{
			Process:      "Christ Entrance Test",
			Requirements: []string{"Class 12 pass", "Entrance test and interview"},
			Documents:    []string{"Class 12 Marksheet", "Identity Proof", "Passport Photos"},
		},
	},
}

var careers = []Career{
	{
		ID:          1,
		Title:       "Software Engineer",
		Category:    "Technology",
		Rating:      4.7,
		Description: "Software engineers design, develop, and maintain software applications and systems.",
		Overview:    "Software engineering is a rapidly growing field that combines technical skills with problem-solving abilities.",
		Salary: SalaryBands{
			Entry:   "₹6L - ₹10L",
			Mid:     "₹12L - ₹20L",
			Senior:  "₹25L - ₹50L",
			Average: "₹15L",
		},
		Growth:          "Very High",
		Demand:          "Very High",
		Experience:      "0-2 years (Entry Level)",
		Education:       "Bachelor's in Computer Science or related field",
		TechnicalSkills: []string{"Programming Languages", "Data Structures", "Algorithms", "Database Management", "Version Control"},
		SoftSkills:      []string{"Problem Solving", "Teamwork", "Communication", "Time Management", "Adaptability"},
		Responsibilities: []string{
			"Design and develop software applications",
			"Write clean, maintainable code",
			"Collaborate with cross-functional teams",
			"Debug and fix software issues",
			"Participate in code reviews",
			"Stay updated with latest technologies",
		},
		Requirements: []string{
			"Bachelor's degree in Computer Science or related field",
			"Proficiency in at least one programming language",
			"Understanding of software development lifecycle",
			"Problem-solving and analytical skills",
			"Good communication skills",
		},
		CareerPath: []CareerStep{
			{Level: "Junior Developer", Experience: "0-2 years", Salary: "₹6L - ₹10L"},
			{Level: "Software Engineer", Experience: "2-4 years", Salary: "₹10L - ₹15L"},
			{Level: "Senior Engineer", Experience: "4-6 years", Salary: "₹15L - ₹25L"},
			{Level: "Tech Lead", Experience: "6-8 years", Salary: "₹25L - ₹40L"},
			{Level: "Engineering Manager", Experience: "8+ years", Salary: "₹40L+"},
		},
		Certifications: []string{
			"AWS Certified Developer",
			"Google Cloud Professional Developer",
			"Microsoft Azure Developer Associate",
			"Oracle Java SE Developer",
		},
	},
	{
		ID:          2,
		Title:       "Chartered Accountant",
		Category:    "Finance",
		Rating:      4.5,
		Description: "Chartered accountants audit financial records, manage taxation, and advise on financial strategy.",
		Overview:    "CA remains one of the most respected finance careers in India with a rigorous qualification path.",
		Salary: SalaryBands{
			Entry:   "₹7L - ₹9L",
			Mid:     "₹12L - ₹18L",
			Senior:  "₹25L - ₹60L",
			Average: "₹12L",
		},
		Growth:          "High",
		Demand:          "High",
		Experience:      "0-2 years (Entry Level)",
		Education:       "CA qualification from ICAI",
		TechnicalSkills: []string{"Accounting Standards", "Taxation", "Auditing", "Financial Reporting"},
		SoftSkills:      []string{"Attention to Detail", "Integrity", "Communication", "Time Management"},
		Responsibilities: []string{
			"Prepare and audit financial statements",
			"File tax returns and advise on tax planning",
			"Ensure regulatory compliance",
			"Advise management on financial strategy",
		},
		Requirements: []string{
			"CA Final qualification",
			"Articleship experience",
			"Knowledge of Indian accounting standards",
		},
		CareerPath: []CareerStep{
			{Level: "Articled Assistant", Experience: "0-3 years", Salary: "₹1L - ₹3L"},
			{Level: "Chartered Accountant", Experience: "0-2 years", Salary: "₹7L - ₹9L"},
			{Level: "Finance Manager", Experience: "4-6 years", Salary: "₹15L - ₹25L"},
			{Level: "CFO", Experience: "12+ years", Salary: "₹50L+"},
		},
		Certifications: []string{"CPA", "CFA", "DISA"},
	},
	{
		ID:          3,
		Title:       "Doctor",
		Category:    "Healthcare",
		Rating:      4.8,
		Description: "Doctors diagnose and treat illnesses, promote wellness, and care for patients across specialities.",
		Overview:    "Medicine is a demanding but deeply rewarding career with strong societal impact.",
		Salary: SalaryBands{
			Entry:   "₹6L - ₹12L",
			Mid:     "₹15L - ₹30L",
			Senior:  "₹40L - ₹1Cr",
			Average: "₹18L",
		},
		Growth:          "High",
		Demand:          "Very High",
		Experience:      "0-2 years (Entry Level)",
		Education:       "MBBS, optionally MD/MS specialization",
		TechnicalSkills: []string{"Clinical Diagnosis", "Patient Care", "Medical Procedures", "Pharmacology"},
		SoftSkills:      []string{"Empathy", "Communication", "Decision Making", "Resilience"},
		Responsibilities: []string{
			"Examine patients and diagnose conditions",
			"Prescribe and administer treatment",
			"Maintain accurate medical records",
			"Coordinate with specialists and care teams",
		},
		Requirements: []string{
			"MBBS degree from a recognized institution",
			"NEET qualification",
			"Medical council registration",
		},
		CareerPath: []CareerStep{
			{Level: "Junior Resident", Experience: "0-3 years", Salary: "₹6L - ₹12L"},
			{Level: "Senior Resident", Experience: "3-6 years", Salary: "₹12L - ₹20L"},
			{Level: "Consultant", Experience: "6-12 years", Salary: "₹25L - ₹60L"},
			{Level: "Senior Consultant", Experience: "12+ years", Salary: "₹60L+"},
		},
		Certifications: []string{"MD/MS", "DNB", "Fellowship programmes"},
	},
}

var scholarships = []Scholarship{
	{
		ID:          1,
		Title:       "National Merit Scholarship",
		Provider:    "Government of India",
		Category:    "Merit-based",
		Amount:      "₹50,000 - ₹1,00,000",
		Deadline:    "2024-03-15",
		Description: "Awarded to students with exceptional academic performance and leadership qualities.",
		Eligibility: []string{"Class 12 with 90%+ marks", "Indian citizenship", "Age 17-25"},
		Requirements: []string{
			"Academic transcripts",
			"Recommendation letters",
			"Essay",
		},
		Status:     "Open",
		Applicants: 15000,
	},
	{
		ID:          2,
		Title:       "Post-Matric Scholarship for Minorities",
		Provider:    "Ministry of Minority Affairs",
		Category:    "Need-based",
		Amount:      "₹10,000 - ₹25,000",
		Deadline:    "2024-10-31",
		Description: "Financial support for students from minority communities pursuing higher education.",
		Eligibility: []string{"Family income below ₹2L per annum", "Minority community certificate", "50%+ marks in previous exam"},
		Requirements: []string{
			"Income certificate",
			"Community certificate",
			"Previous marksheets",
		},
		Status:     "Open",
		Applicants: 80000,
	},
	{
		ID:          3,
		Title:       "INSPIRE Scholarship",
		Provider:    "Department of Science and Technology",
		Category:    "Merit-based",
		Amount:      "₹80,000 per year",
		Deadline:    "2024-12-31",
		Description: "Encourages top-performing students to pursue natural and basic sciences at the undergraduate level.",
		Eligibility: []string{"Top 1% in Class 12 board exams", "Enrolled in B.Sc or integrated M.Sc", "Natural sciences stream"},
		Requirements: []string{
			"Board exam marksheet",
			"College enrollment proof",
			"Bank account details",
		},
		Status:     "Open",
		Applicants: 45000,
	},
}

var assessments = []Assessment{
	{
		ID:           1,
		QuizID:       recommend.QuizStreamSelector,
		Title:        "Class 10 Stream Selector",
		Description:  "Discover the perfect stream for your Class 11 based on your interests, strengths, and career goals.",
		Category:     "stream",
		Duration:     "10-15 min",
		Questions:    8,
		Difficulty:   "Easy",
		Rating:       4.8,
		Participants: 15000,
	},
	{
		ID:           2,
		QuizID:       recommend.QuizCareerCompass,
		Title:        "Career Compass",
		Description:  "Map your personality and preferences to the industries and roles where you will thrive.",
		Category:     "career",
		Duration:     "10-15 min",
		Questions:    10,
		Difficulty:   "Easy",
		Rating:       4.7,
		Participants: 12000,
	},
	{
		ID:           3,
		Title:        "Aptitude Mastery Test",
		Description:  "Benchmark your quantitative, verbal, and logical reasoning against entrance-exam standards.",
		Category:     "aptitude",
		Duration:     "45-60 min",
		Questions:    60,
		Difficulty:   "Hard",
		Rating:       4.5,
		Participants: 9000,
	},
}
