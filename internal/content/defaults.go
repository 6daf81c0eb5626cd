package content

var (
	heroIntro = `I'm an SDE who ships features end-to-end: clean APIs, simple UIs,
and the tooling to keep them fast. I write readable code with tests, measure
what I build, and iterate from data. Goal: features that are **easy to
maintain** and **hard to break**.`

	defaultProjects = []Project{
		{
			Title:   "SprintLite — Kanban Issue Tracker",
			Summary: "Jira-style board for planning sprints and tracking bugs/features.",
			Bullets: []string{
				"Designed clean REST API and normalized PostgreSQL schema (indexed lists, search, pagination).",
				"Built drag-and-drop boards with optimistic updates; RBAC with JWT; server filters keep UX snappy at scale.",
				"Added CI (GitHub Actions) and tests (JUnit/Mockito) for core flows; Docker Compose for one-command local dev & deploy.",
			},
			Tech: "Next.js • React • Spring Boot • PostgreSQL • JUnit/Mockito • Docker • GitHub Actions",
		},
		{
			Title:   "Trade-in — Smart Cryptocurrency Assistant",
			Summary: "Realtime market data, secure actions, resilient microservices.",
			Bullets: []string{
				"Implemented WebSocket streams for live prices; React + Redux for predictable state management.",
				"Hardened services with JWT auth, AES encryption, Redis caching; tuned PostgreSQL queries and indexes.",
				"Containerized and shipped via Jenkins CI/CD; reproducible builds and rollbacks.",
			},
			Tech: "React • Redux • Spring Boot • PostgreSQL • Redis • JWT • Docker • Jenkins",
		},
		{
			Title:   "Student Social Responsibility Platform",
			Summary: "Community platform showcasing 140+ initiatives.",
			Bullets: []string{
				"Next.js + Django REST APIs; SSR and caching kept pages responsive under peak traffic.",
				"Structured SQL patterns; lazy loading & async API calls reduced over-fetching.",
				"Delivered in an Agile team; recognized as Best Innovative Project of the Year.",
			},
			Tech: "Next.js • Django • SQL • JWT • Docker • CI/CD",
		},
		{
			Title:   "Telugu Handwritten OCR — CNN + YOLOv8n",
			Summary: "Applied CV model for high-accuracy handwritten recognition.",
			Bullets: []string{
				"Trained CNN with cosine-similarity embeddings achieving 97.3% accuracy on the dataset.",
				"Integrated YOLOv8n detection; Optuna tuning reduced trial time and improved stability.",
				"Published in ICAN 2024; journal article with Springer Nature Computer Science.",
			},
			Tech: "Python • CNN • YOLOv8n • Optuna",
		},
	}

	// Oldest first.
	defaultExperience = []Role{
		{
			Org:    "Amrita Vishwa Vidyapeetham",
			Title:  "Java Developer",
			Period: "Aug 2022 – Dec 2023",
			Points: []string{
				"Delivered Spring Boot/MVC services with Hibernate/JPA to support peak-term registration traffic.",
				"Tuned MySQL (indexes, joins) and Tomcat/JVM settings; improved throughput and reduced response times under load.",
				"Introduced async REST patterns; cut bottlenecks and smoothed spikes.",
				"Set up Dockerized environments and Jenkins CI/CD; repeatable builds and quick rollback.",
				"Optimized Angular client (state reuse, lighter payloads); ~30% faster registration UX for 5,000+ users.",
			},
		},
		{
			Org:    "Amrita Vishwa Vidyapeetham",
			Title:  "Research Assistant — Computer Vision",
			Period: "Jan 2024 – Jul 2024",
			Points: []string{
				"Built CNN with cosine-similarity embeddings for Telugu handwriting; reached 97.3% accuracy (beat baselines).",
				"Integrated YOLOv8n detection; Optuna tuning improved training efficiency by ~25%.",
				"Published findings (ICAN 2024; SN Computer Science, Springer Nature).",
			},
		},
		{
			Org:    "Georgia State University",
			Title:  "Graduate Teaching Assistant — Algorithms",
			Period: "Aug 2024 – Present",
			Points: []string{
				"Led 15+ lectures and 10+ labs on recursion, OOP, DP and greedy strategies; clarified problem-solving patterns.",
				"Designed practical exercises and live code reviews; increased lab participation by ~20%.",
			},
		},
	}

	defaultSkills = []SkillGroup{
		{Category: "Languages", Icon: "code", Skills: []string{"Java", "C++", "Python", "JavaScript", "TypeScript", "SQL", "HTML/CSS"}},
		{Category: "Frameworks", Icon: "server", Skills: []string{"Spring Boot/MVC", "Hibernate", "JPA", "React", "Next.js", "Angular", "Django", "Redux", "REST APIs"}},
		{Category: "Databases", Icon: "database", Skills: []string{"MySQL", "PostgreSQL", "MongoDB", "Redis"}},
		{Category: "Cloud & Tools", Icon: "cloud", Skills: []string{"AWS (EC2, RDS, S3)", "Docker", "Git/GitHub", "Jenkins", "JUnit/Mockito", "JMeter"}},
	}

	defaultPublications = []Publication{
		{
			Title: "TeluguScriptify: A Custom Deep Learning Model for Handwritten Telugu Text Recognition and Tool Development",
			Venue: "SN Computer Science Journal, Springer Nature",
			Date:  "Aug ’24",
			URL:   "https://link.springer.com/article/10.1007/s42979-025-03677-z",
		},
		{
			Title: "Efficient Fraud Detection in Financial Transactions Using Gradient Boosting and XGBoost Algorithms",
			Venue: "International Journal of All Research Education and Scientific Methods",
			Date:  "Sep ’23",
			URL:   "https://www.ijaresm.com/efficient-fraud-detection-in-financial-transactions-using-gradient-boosting-and-xgboost-algorithms",
		},
	}

	defaultEducation = []Education{
		{
			Institution: "Georgia State University",
			Degree:      "M.S. Computer Science",
			Detail:      "GPA: 4.0 • Expected Dec 2025",
			Awards:      []Award{{Label: "Presidential Scholar Awardee", Icon: "award"}},
		},
		{
			Institution: "Amrita Vishwa Vidyapeetham",
			Degree:      "B.Tech Computer Science",
			Detail:      "GPA: 3.71 • Graduated Jul 2024",
			Awards: []Award{
				{Label: "Innovative Project Award", Icon: "award"},
				{Label: "Best Research Paper Award", Icon: "book"},
			},
		},
	}

	defaultSocials = []SocialLink{
		{Label: "LinkedIn", Icon: "linkedin", URL: "https://www.linkedin.com/in/abhiram08/"},
		{Label: "GitHub", Icon: "github", URL: "https://github.com/GaddamAbhiram"},
		{Label: "Instagram", Icon: "instagram", URL: "https://www.instagram.com/__abhi__08/"},
	}
)

// Default returns the built-in portfolio content. Every call returns a
// fresh copy.
func Default() *Page {
	return &Page{
		Owner: "Abhiram Gaddam",
		Title: "Abhiram Gaddam — Software Engineer",
		Hero: Hero{
			Greeting:    "Bonjour!",
			Intro:       heroIntro,
			Email:       "agaddam2@student.gsu.edu",
			ResumeLabel: "Download Résumé",
			ProfileAlt:  "Abhiram Gaddam",
		},
		Headings: map[string]Heading{
			SectionExperience:   {Subtitle: "Impact-focused highlights (chronological)."},
			SectionSkills:       {Subtitle: "Production-ready tools I use to ship software."},
			SectionPublications: {Subtitle: "Peer-reviewed & journal articles."},
			SectionEducation:    {Title: "Education & Recognition", Subtitle: "Academic performance and honors."},
		},
		Projects:     cloneSlice(defaultProjects),
		Experience:   cloneSlice(defaultExperience),
		Skills:       cloneSlice(defaultSkills),
		Publications: cloneSlice(defaultPublications),
		Education:    cloneSlice(defaultEducation),
		Contact: Contact{
			Email:    "agaddam2@student.gsu.edu",
			Phone:    "804-944-3653",
			Location: "Atlanta, GA",
		},
		Socials: cloneSlice(defaultSocials),
		Footer:  "Built with Go + html/template • A11y-enhanced",
	}
}

func cloneSlice[T any](s []T) []T {
	return append([]T(nil), s...)
}
