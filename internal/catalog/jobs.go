package catalog

import "github.com/jonathan/jobboard/internal/types"

var defaultJobs = []types.Job{
	{
		ID:          1,
		Title:       "General Labour",
		Company:     "Warehouse Position",
		Location:    "Mississauga, ON",
		Type:        types.JobTypeFullTime,
		Salary:      "$18.30 / hour",
		Description: "We are hiring reliable and hardworking General Labourers for a busy warehouse environment. This is a great opportunity to join a dynamic team with potential for growth.",
		Responsibilities: []string{
			"Loading and unloading materials from delivery trucks.",
			"Picking and packing orders accurately and efficiently.",
			"Maintaining a clean and safe work area at all times.",
			"Operating basic warehouse equipment like pallet jacks.",
		},
		Qualifications: []string{
			"Ability to lift up to 50 lbs consistently.",
			"Previous warehouse experience is an asset but not required.",
			"Positive attitude and willingness to work as part of a team.",
			"Must own CSA-approved steel-toed safety boots.",
		},
	},
	{
		ID:          2,
		Title:       "Janitorial / Sanitization Crew",
		Company:     "Commercial Cleaning Services",
		Location:    "Brampton, ON",
		Type:        types.JobTypePartTime,
		Salary:      "$17.90 / hour",
		Description: "Seeking dedicated individuals to join our Janitorial and Sanitization Crew. You will be responsible for maintaining the cleanliness and safety of commercial facilities.",
		Responsibilities: []string{
			"Performing general cleaning duties such as sweeping, mopping, and dusting.",
			"Sanitizing high-touch surfaces, restrooms, and common areas.",
			"Emptying trash and recycling receptacles.",
			"Following all health and safety regulations and procedures.",
		},
		Qualifications: []string{
			"Previous cleaning or janitorial experience preferred.",
			"Strong attention to detail and a thorough work ethic.",
			"Ability to work independently with minimal supervision.",
			"Knowledge of cleaning chemicals and supplies is a plus.",
		},
	},
	{
		ID:          3,
		Title:       "General Labour",
		Company:     "Warehouse Position",
		Location:    "Mississauga, ON",
		Type:        types.JobTypeFullTime,
		Salary:      "$18.60 / hour",
		Description: "Join our fast-paced warehouse team as a General Labourer. We are looking for motivated individuals who thrive in an active work environment and are committed to quality.",
		Responsibilities: []string{
			"Sorting and placing materials or items on racks, shelves, or in bins.",
			"Assisting with regular inventory counts and quality control checks.",
			"Preparing customer orders for shipment according to specifications.",
			"Adhering to all company quality and safety standards.",
		},
		Qualifications: []string{
			"Must be able to stand for extended periods and perform repetitive tasks.",
			"Good communication and organizational skills.",
			"Reliable and punctual with a strong attendance record.",
			"Ability to work effectively in a team-oriented environment.",
		},
	},
	{
		ID:          4,
		Title:       "Data Scientist",
		Company:     "DataDriven Inc.",
		Location:    "Austin, TX",
		Type:        types.JobTypeFullTime,
		Salary:      "$130,000 - $160,000",
		Description: "Analyze large, complex datasets to extract valuable insights and drive business decisions. Proficiency in Python, SQL, and machine learning frameworks is essential for this role.",
		Responsibilities: []string{
			"Work with stakeholders to identify opportunities for leveraging company data.",
			"Mine and analyze data from company databases to drive optimization.",
			"Develop custom data models and algorithms to apply to data sets.",
			"Build predictive models and machine-learning algorithms.",
		},
		Qualifications: []string{
			"Experience with common data science toolkits, such as R, Python, etc.",
			"Proficiency in using query languages such as SQL.",
			"Good applied statistics skills, such as distributions, statistical testing, regression, etc.",
			"Experience with machine learning techniques and algorithms.",
		},
	},
	{
		ID:          5,
		Title:       "Digital Marketing Specialist",
		Company:     "GrowthPro Agency",
		Location:    "Chicago, IL",
		Type:        types.JobTypePartTime,
		Salary:      "$30 - $45 / hour",
		Description: "Develop and execute digital marketing campaigns across various channels, including SEO, SEM, social media, and email marketing. Help our clients achieve their growth targets.",
		Responsibilities: []string{
			"Plan and execute all digital marketing, including SEO/SEM, marketing database, email, social media and display advertising campaigns.",
			"Measure and report performance of all digital marketing campaigns.",
			"Identify trends and insights, and optimize spend and performance based on the insights.",
			"Collaborate with internal teams to create landing pages and optimize user experience.",
		},
		Qualifications: []string{
			"Proven working experience in digital marketing.",
			"Demonstrable experience leading and managing SEO/SEM, marketing database, email, social media and/or display advertising campaigns.",
			"Highly creative with experience in identifying target audiences and devising digital campaigns that engage, inform and motivate.",
			"Experience with A/B and multivariate experiments.",
		},
	},
	{
		ID:          6,
		Title:       "Backend Developer (Node.js)",
		Company:     "ServerSide Solutions",
		Location:    "Boston, MA",
		Type:        types.JobTypeFullTime,
		Salary:      "$120,000 - $150,000",
		Description: "Build and maintain scalable and secure server-side applications and APIs using Node.js, Express, and PostgreSQL. You will be responsible for the core logic that powers our services.",
		Responsibilities: []string{
			"Design and implement low-latency, high-availability, and performant applications.",
			"Write reusable, testable, and efficient code.",
			"Integration of data storage solutions, including databases, key-value stores, blob stores, etc.",
			"Implementation of security and data protection.",
		},
		Qualifications: []string{
			"Strong proficiency with JavaScript and Node.js.",
			"Experience with frameworks such as Express.",
			"Understanding the nature of asynchronous programming.",
			"User authentication and authorization between multiple systems, servers, and environments.",
		},
	},
}
