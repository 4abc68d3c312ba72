package services

// Category codes, in declared order. Quiz tie-breaks resolve in this order,
// first declared wins.
var Categories = [5]string{"T", "H", "E", "C", "B"}

// CategoryMap translates a quiz category code to the career-interest slug
// stored on the user profile.
var CategoryMap = map[string]string{
	"T": "software",
	"H": "health",
	"E": "engineering",
	"C": "creative",
	"B": "business",
}

// TaskCatalog lists the suggested micro-tasks per career interest. Daily
// task rotation samples from these lists.
var TaskCatalog = map[string][]string{
	"software": {
		"Watch a 5-minute tutorial on HTML/CSS.",
		"Organize your coding workspace for 5 minutes.",
		"Create a new folder for your future projects.",
		"Try inspecting a website using Chrome DevTools.",
		"Watch a short introduction to JavaScript variables.",
		"Take a 10-minute walk to reset your brain.",
		"Write a simple 'Hello World' program.",
		"Explore GitHub and bookmark one interesting project.",
		"Clean up old files on your desktop.",
		"Review BCIT CST program requirements for 2 minutes.",
	},
	"health": {
		"Watch a 3-minute video on communication in healthcare.",
		"Read a short article on patient empathy.",
		"Stretch your shoulders for 30 seconds.",
		"Drink a glass of water and take a breath break.",
		"Learn what 'confidentiality' means in healthcare.",
		"Organize your notes or school materials.",
		"Skim BCIT Nursing admission requirements.",
		"Watch a short 'day in the life of a nurse' video.",
		"Practice writing a short reflection on why you want to help others.",
		"Take a short walk to clear your head.",
	},
	"engineering": {
		"Watch a 5-minute video on how electricity works.",
		"Pick up a simple tool at home and identify its components.",
		"Organize your workspace or toolbox.",
		"Learn what an HVAC technician does in under 3 minutes.",
		"Try tightening or adjusting something safely at home.",
		"Stretch your hands and wrists for 30 seconds.",
		"Explore a blueprint or diagram online.",
		"Check BCIT Engineering or Trades prerequisites.",
		"Look at a simple wiring diagram and identify symbols.",
		"Take a 5-minute break to walk or stretch.",
	},
	"creative": {
		"Sketch something for 2 minutes - anything.",
		"Watch a short tutorial on color theory.",
		"Analyze the UI of an app you like for 1 minute.",
		"Organize your creative workspace or tools.",
		"Take a picture of something inspiring.",
		"Try redesigning a small icon or button you see online.",
		"Browse Figma community templates.",
		"Do a 2-minute breathing exercise to refresh your creativity.",
		"Read BCIT Graphic Design requirements.",
		"Pick one product you use and critique its design.",
	},
	"business": {
		"Watch a 5-minute intro to marketing or business management.",
		"Create a quick SWOT analysis of a brand you like.",
		"Write a list of 3 businesses you admire.",
		"Organize your notes or digital folders.",
		"Watch a short video on leadership or teamwork.",
		"Review BCIT Business program admission details.",
		"Take a 2-minute break to stretch or walk.",
		"Practice writing a short professional email.",
		"Identify a problem in your school or daily life and propose a solution.",
		"Read one page of a business article or news update.",
	},
}

// Program is one recommended program on the quiz results page.
type Program struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Advisor string `json:"advisor"`
}

// ProgramTrack groups the recommended programs for one quiz category.
type ProgramTrack struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Programs    []Program `json:"programs"`
}

var ProgramTracks = map[string]ProgramTrack{
	"T": {
		Name:        "Tech Programs",
		Description: "You enjoy logic, problem-solving, and working with technology. Tech programs at BCIT might be a strong fit.",
		Programs: []Program{
			{Title: "CST - Computer Systems Technology", URL: "https://www.bcit.ca/programs/computer-systems-technology-diploma-full-time-5500dipma/", Advisor: "cst@bcit.ca"},
			{Title: "CIT - Computer Information Technology", URL: "https://www.bcit.ca/programs/computer-information-technology-diploma-full-time-5510dipma/", Advisor: "cit@bcit.ca"},
			{Title: "Technology Support Professional", URL: "https://www.bcit.ca/programs/technology-support-professional-certificate-full-time-6445cert/", Advisor: "tsp@bcit.ca"},
		},
	},
	"H": {
		Name:        "Health Programs",
		Description: "You are people-focused and care about helping others. A health-related BCIT program could be a great match.",
		Programs: []Program{
			{Title: "Nursing", URL: "https://www.bcit.ca/programs/bachelor-of-science-in-nursing-full-time-810fbscn/", Advisor: "nursing@bcit.ca"},
			{Title: "Medical Laboratory Science", URL: "https://www.bcit.ca/programs/medical-laboratory-science-diploma-full-time-1070diplt/", Advisor: "medlab@bcit.ca"},
		},
	},
	"E": {
		Name:        "Engineering & Trades",
		Description: "You enjoy working with your hands, tools, and equipment. Engineering or trades programs may fit your style.",
		Programs: []Program{
			{Title: "Electrical", URL: "https://www.bcit.ca/programs/electrical-foundation-full-time-icci/", Advisor: "electrical@bcit.ca"},
			{Title: "Welding", URL: "https://www.bcit.ca/programs/welding-foundation-full-time-icwp/", Advisor: "welding@bcit.ca"},
			{Title: "HVAC & Refrigeration", URL: "https://www.bcit.ca/programs/hvac-refrigeration-technician-foundation-full-time-icpr/", Advisor: "hvac@bcit.ca"},
		},
	},
	"C": {
		Name:        "Creative Programs",
		Description: "You lean toward design, visuals, and creative work. Creative-focused programs could help you grow that strength.",
		Programs: []Program{
			{Title: "Graphic Design", URL: "https://www.bcit.ca/programs/graphic-communications-technology-management-diploma-full-time-6515diplt/", Advisor: "design@bcit.ca"},
			{Title: "Animation or Media", URL: "https://www.bcit.ca/study/creative-arts-media/", Advisor: "media@bcit.ca"},
		},
	},
	"B": {
		Name:        "Business Programs",
		Description: "You like organizing, planning, and understanding how organizations work. Business programs may be a good direction.",
		Programs: []Program{
			{Title: "Business Administration", URL: "https://www.bcit.ca/programs/business-administration-diploma-full-time-500adipma/", Advisor: "business@bcit.ca"},
			{Title: "Marketing", URL: "https://www.bcit.ca/programs/marketing-management-diploma-full-time-630adipma/", Advisor: "marketing@bcit.ca"},
		},
	},
}

// RoadmapTrack is the personalized heading shown on the roadmap page.
type RoadmapTrack struct {
	Label string `json:"label"`
	Blurb string `json:"blurb"`
}

var RoadmapTracks = map[string]RoadmapTrack{
	"T": {
		Label: "Tech Track - for programs like CST, CIT, and TSP.",
		Blurb: "Your quiz suggests you're a strong fit for technology programs that focus on problem-solving, coding, and working with systems.",
	},
	"H": {
		Label: "Health Track - for programs like Nursing and Medical Laboratory Science.",
		Blurb: "Your quiz suggests you're people-focused and value helping others in healthcare or support roles.",
	},
	"E": {
		Label: "Engineering & Trades Track - for programs like Electrical, Welding, and HVAC.",
		Blurb: "Your quiz suggests you enjoy hands-on work, tools, equipment, and practical problem-solving.",
	},
	"C": {
		Label: "Creative Track - for programs like Graphic Communications and Media Arts.",
		Blurb: "Your quiz suggests you're drawn to visual design, communication, and creative projects.",
	},
	"B": {
		Label: "Business Track - for programs like Business Administration and Marketing.",
		Blurb: "Your quiz suggests you're interested in planning, organizing, and understanding how organizations work.",
	},
}
