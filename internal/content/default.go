package content

const (
	githubURL   = "https://github.com/Rohancherukuri"
	linkedinURL = "https://www.linkedin.com/in/rohan-cherukuri-5877b2182"
	email       = "rohanoxob3000@gmail.com"
)

var aboutMe = `As a Machine Learning Engineer, I specialize in developing and deploying scalable ML solutions ` +
	`across computer vision, NLP, and statistical modeling. Experienced in taking projects from concept to production.`

// Default returns the content the binary ships with. Each call builds a
// fresh value so callers may not share slices by accident.
func Default() Profile {
	return Profile{
		Meta: Meta{
			Title:       "Rohan Cherukuri - Machine Learning Engineer",
			Description: "Portfolio of Rohan Cherukuri, a Machine Learning Engineer specializing in AI, Computer Vision, and NLP",
			Language:    "en",
			Credit:      "Built with Go",
		},
		Name:     "Rohan Cherukuri",
		Role:     "Machine Learning Engineer",
		Location: "Hyderabad, India",
		Email:    email,
		Phone:    "7032675528",
		Links: []SocialLink{
			{Label: "GitHub", URL: githubURL, Icon: "github"},
			{Label: "LinkedIn", URL: linkedinURL, Icon: "linkedin"},
		},
		About: aboutMe,
		Experience: []Experience{
			{
				Company:     "Archimydes",
				Role:        "Machine Learning Engineer",
				Dates:       "Jan 2024 - Feb 2025",
				Description: "Built and deployed scalable cross-platform apps for patient ECG analysis with AI-driven diagnostics.",
			},
			{
				Company:     "Star Health And Allied Insurance Limited",
				Role:        "Deputy Manager - Analytics",
				Dates:       "Jul 2022 - Aug 2023",
				Description: "Delivered ML, NLP, and analytics projects that improved operational efficiency and customer insights.",
			},
			{
				Company:     "iNeuron",
				Role:        "Machine Learning Intern",
				Dates:       "May 2021 - Nov 2021",
				Description: "Developed a class-based custom clustering algorithm with logging and ML pipeline experience.",
			},
		},
		Projects: []Project{
			{Title: "3D Image Reconstruction", Description: "Neural radiance fields for 3D reconstruction.", TechStack: "Python, PyTorch, NeRF"},
			{Title: "Speech To Text Analysis", Description: "Advanced speech recognition with diarization.", TechStack: "PyTorch, Whisper, Pydub"},
			{Title: "Industry Alerts Web App", Description: "Real-time automated customer alerts app.", TechStack: "Python, Flet, OracleDB"},
			{Title: "AI ECG Analysis Tools", Description: "Automated ECG validation and reporting pipeline.", TechStack: "Python, Deep Learning, WebApp"},
		},
		Skills: []SkillCategory{
			{Title: "Languages", Skills: []string{"Python", "Dart", "SQL", "Yaml"}, Icon: "code"},
			{Title: "ML/AI Frameworks", Skills: []string{"PyTorch", "scikit-learn", "Jax", "transformers", "diffusers", "opencv", "spacy"}, Icon: "cpu"},
			{Title: "Data & Analytics", Skills: []string{"pandas", "numpy", "matplotlib", "plotly"}, Icon: "bar-chart-3"},
			{Title: "Cloud & DevOps", Skills: []string{"Docker", "Kubernetes", "Azure ML", "Databricks"}, Icon: "cloud"},
			{Title: "Databases", Skills: []string{"SurrealDB", "RedisDB", "OracleDB", "MongoDB"}, Icon: "database"},
			{Title: "Development Tools", Skills: []string{"FlutterFlow", "Git", "PowerBI", "FFmpeg"}, Icon: "wrench"},
		},
		Education: Education{
			Degree:      "Bachelor of Engineering in Information Technology",
			Institution: "Muffakham Jah College of Engineering and Technology",
			Dates:       "July 2018 - June 2022",
			Location:    "Hyderabad, India",
			Icon:        "graduation-cap",
		},
		Contact: Contact{
			Blurb: "I'm always open to new opportunities and exciting projects.",
			Actions: []Action{
				{Label: "Email Me", URL: Mailto(email), Variant: ActionSolid},
				{Label: "LinkedIn", URL: linkedinURL, Variant: ActionOutline},
			},
		},
	}
}
