package catalog

// seedColleges returns the static college catalog. Admission rate and average
// GPA are 0 where the school does not publish them; the scorer falls back to
// division-tier estimates.
func seedColleges() []College {
	return []College{
		{
			ID: 1, Name: "University of Alabama", Division: DivisionD1, Conference: "SEC",
			Region: "Southeast", State: "AL", City: "Tuscaloosa", Public: true,
			Enrollment: 38316, AdmissionRate: 0.80, AvgGPA: 3.71,
			TuitionInState: 11620, TuitionOutOfState: 31460, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Baseball", "Track & Field"},
			Programs:           []string{"Business Administration", "Engineering", "Communications", "Kinesiology", "Criminal Justice"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Wide Receiver (WR)", "Defensive Back (DB)"},
			Facilities:         "100,000+ seat stadium, dedicated football performance center",
			RecentSuccess:      "Multiple national championships in the last decade",
		},
		{
			ID: 2, Name: "Ohio State University", Division: DivisionD1, Conference: "Big Ten",
			Region: "Midwest", State: "OH", City: "Columbus", Public: true,
			Enrollment: 61677, AdmissionRate: 0.53, AvgGPA: 3.83,
			TuitionInState: 12485, TuitionOutOfState: 36722, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Wrestling", "Soccer"},
			Programs:           []string{"Business Administration", "Engineering", "Psychology", "Sport Industry", "Biology"},
			ActivelyRecruiting: []string{"Offensive Lineman (OL)", "Linebacker (LB)", "Running Back (RB)"},
			Facilities:         "Woody Hayes Athletic Center, 102,000 seat stadium",
			RecentSuccess:      "College Football Playoff appearances and a national title",
		},
		{
			ID: 3, Name: "University of Michigan", Division: DivisionD1, Conference: "Big Ten",
			Region: "Midwest", State: "MI", City: "Ann Arbor", Public: true,
			Enrollment: 51225, AdmissionRate: 0.18, AvgGPA: 3.90,
			TuitionInState: 17786, TuitionOutOfState: 57273, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Hockey", "Swimming"},
			Programs:           []string{"Engineering", "Business Administration", "Computer Science", "Pre-Med", "Economics"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Tight End (TE)", "Defensive Lineman (DL)"},
			Facilities:         "The Big House, Schembechler Hall training complex",
			RecentSuccess:      "Recent national championship and conference titles",
		},
		{
			ID: 4, Name: "Stanford University", Division: DivisionD1, Conference: "ACC",
			Region: "West", State: "CA", City: "Stanford", Public: false,
			Enrollment: 17680, AdmissionRate: 0.04, AvgGPA: 3.96,
			TuitionInState: 62484, TuitionOutOfState: 62484, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Swimming", "Tennis"},
			Programs:           []string{"Computer Science", "Engineering", "Economics", "Biology", "Political Science"},
			ActivelyRecruiting: []string{"Offensive Lineman (OL)", "Safety (S)", "Kicker (K)"},
			Facilities:         "Stanford Stadium, Arrillaga Family Sports Center",
			RecentSuccess:      "Consistent bowl appearances with top academic graduation rates",
		},
		{
			ID: 5, Name: "University of Texas at Austin", Division: DivisionD1, Conference: "SEC",
			Region: "Southwest", State: "TX", City: "Austin", Public: true,
			Enrollment: 51913, AdmissionRate: 0.31, AvgGPA: 3.84,
			TuitionInState: 11698, TuitionOutOfState: 41070, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Baseball", "Track & Field"},
			Programs:           []string{"Business Administration", "Engineering", "Communications", "Computer Science", "Kinesiology"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Wide Receiver (WR)", "Cornerback (CB)"},
			Facilities:         "100,000+ seat stadium, Moncrief-Neuhaus Athletic Center",
			RecentSuccess:      "College Football Playoff semifinal appearances",
		},
		{
			ID: 6, Name: "Boise State University", Division: DivisionD1, Conference: "Mountain West",
			Region: "West", State: "ID", City: "Boise", Public: true,
			Enrollment: 26163, AdmissionRate: 0.84, AvgGPA: 3.42,
			TuitionInState: 8364, TuitionOutOfState: 26976, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Gymnastics"},
			Programs:           []string{"Business Administration", "Nursing", "Criminal Justice", "Communications"},
			ActivelyRecruiting: []string{"Running Back (RB)", "Linebacker (LB)", "Offensive Lineman (OL)"},
			Facilities:         "Albertsons Stadium with the signature blue turf",
			RecentSuccess:      "Group of Five playoff appearance and conference championships",
		},
		{
			ID: 7, Name: "Appalachian State University", Division: DivisionD1, Conference: "Sun Belt",
			Region: "Southeast", State: "NC", City: "Boone", Public: true,
			Enrollment: 21253, AdmissionRate: 0.83, AvgGPA: 3.50,
			TuitionInState: 7410, TuitionOutOfState: 23655, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Soccer"},
			Programs:           []string{"Business Administration", "Exercise Science", "Education", "Sustainable Development"},
			ActivelyRecruiting: []string{"Safety (S)", "Wide Receiver (WR)", "Defensive Lineman (DL)"},
			Facilities:         "Kidd Brewer Stadium, indoor practice facility",
			RecentSuccess:      "Multiple Sun Belt championships and bowl wins",
		},
		{
			ID: 8, Name: "Grand Valley State University", Division: DivisionD2, Conference: "GLIAC",
			Region: "Midwest", State: "MI", City: "Allendale", Public: true,
			Enrollment: 21648, AdmissionRate: 0.92, AvgGPA: 3.40,
			TuitionInState: 14040, TuitionOutOfState: 20124, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Track & Field"},
			Programs:           []string{"Business Administration", "Nursing", "Engineering", "Movement Science"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Linebacker (LB)", "Offensive Lineman (OL)"},
			Facilities:         "Lubbers Stadium, Kelly Family Sports Center",
			RecentSuccess:      "Perennial D2 playoff contender with multiple national titles",
		},
		{
			ID: 9, Name: "Ferris State University", Division: DivisionD2, Conference: "GLIAC",
			Region: "Midwest", State: "MI", City: "Big Rapids", Public: true,
			Enrollment: 10073, AdmissionRate: 0.87, AvgGPA: 3.30,
			TuitionInState: 13736, TuitionOutOfState: 13736, AthleticScholarships: true,
			Sports:             []string{"Football", "Hockey", "Basketball"},
			Programs:           []string{"Criminal Justice", "Business Administration", "Construction Management", "Pharmacy"},
			ActivelyRecruiting: []string{"Running Back (RB)", "Defensive Back (DB)", "Tight End (TE)"},
			Facilities:         "Top Taggart Field, new athletic performance center",
			RecentSuccess:      "Back-to-back D2 national championships",
		},
		{
			ID: 10, Name: "West Texas A&M University", Division: DivisionD2, Conference: "Lone Star",
			Region: "Southwest", State: "TX", City: "Canyon", Public: true,
			Enrollment: 9000, AdmissionRate: 0.68, AvgGPA: 3.35,
			TuitionInState: 8971, TuitionOutOfState: 10921, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Baseball"},
			Programs:           []string{"Agriculture", "Business Administration", "Education", "Sports and Exercise Science"},
			ActivelyRecruiting: []string{"Wide Receiver (WR)", "Cornerback (CB)", "Kicker (K)"},
			Facilities:         "Buffalo Stadium, on-campus since 2019",
			RecentSuccess:      "Lone Star Conference title contention",
		},
		{
			ID: 11, Name: "California University of Pennsylvania", Division: DivisionD2, Conference: "PSAC",
			Region: "Northeast", State: "PA", City: "California", Public: true,
			Enrollment: 6838, AdmissionRate: 0.95, AvgGPA: 3.20,
			TuitionInState: 10716, TuitionOutOfState: 15768, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Soccer"},
			Programs:           []string{"Criminal Justice", "Business Administration", "Exercise Science", "Education"},
			ActivelyRecruiting: []string{"Linebacker (LB)", "Offensive Lineman (OL)", "Safety (S)"},
			Facilities:         "Adamson Stadium, renovated weight room",
		},
		{
			ID: 12, Name: "Williams College", Division: DivisionD3, Conference: "NESCAC",
			Region: "Northeast", State: "MA", City: "Williamstown", Public: false,
			Enrollment: 2138, AdmissionRate: 0.09, AvgGPA: 3.92,
			TuitionInState: 64540, TuitionOutOfState: 64540, AthleticScholarships: false,
			Sports:             []string{"Football", "Soccer", "Crew", "Skiing"},
			Programs:           []string{"Economics", "Biology", "Computer Science", "Political Science", "Mathematics"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Defensive Back (DB)", "Wide Receiver (WR)"},
			Facilities:         "Weston Field athletic complex",
			RecentSuccess:      "NESCAC championship contention with elite academics",
		},
		{
			ID: 13, Name: "University of Wisconsin-Whitewater", Division: DivisionD3, Conference: "WIAC",
			Region: "Midwest", State: "WI", City: "Whitewater", Public: true,
			Enrollment: 11842, AdmissionRate: 0.96, AvgGPA: 3.20,
			TuitionInState: 7692, TuitionOutOfState: 16265, AthleticScholarships: false,
			Sports:             []string{"Football", "Basketball", "Wrestling"},
			Programs:           []string{"Business Administration", "Education", "Communications", "Accounting"},
			ActivelyRecruiting: []string{"Running Back (RB)", "Linebacker (LB)", "Tight End (TE)"},
			Facilities:         "Perkins Stadium, the largest in D3",
			RecentSuccess:      "Multiple D3 national championships",
		},
		{
			ID: 14, Name: "Mount Union University", Division: DivisionD3, Conference: "OAC",
			Region: "Midwest", State: "OH", City: "Alliance", Public: false,
			Enrollment: 2309, AdmissionRate: 0.79, AvgGPA: 3.40,
			TuitionInState: 34800, TuitionOutOfState: 34800, AthleticScholarships: false,
			Sports:             []string{"Football", "Track & Field", "Basketball"},
			Programs:           []string{"Exercise Science", "Business Administration", "Engineering", "Sports Business"},
			ActivelyRecruiting: []string{"Wide Receiver (WR)", "Defensive Lineman (DL)", "Cornerback (CB)"},
			Facilities:         "Mount Union Stadium, indoor performance center",
			RecentSuccess:      "The winningest program in D3 history",
		},
		{
			ID: 15, Name: "Trinity University", Division: DivisionD3, Conference: "SAA",
			Region: "Southwest", State: "TX", City: "San Antonio", Public: false,
			Enrollment: 2652, AdmissionRate: 0.31, AvgGPA: 3.70,
			TuitionInState: 50664, TuitionOutOfState: 50664, AthleticScholarships: false,
			Sports:             []string{"Football", "Soccer", "Tennis"},
			Programs:           []string{"Business Analytics", "Engineering Science", "Biology", "Finance", "Computer Science"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Safety (S)", "Offensive Lineman (OL)"},
			Facilities:         "Trinity Stadium, new strength and conditioning center",
			RecentSuccess:      "Conference championships and D3 playoff runs",
		},
		{
			ID: 16, Name: "Morningside University", Division: DivisionNAIA, Conference: "GPAC",
			Region: "Midwest", State: "IA", City: "Sioux City", Public: false,
			Enrollment: 2653, AdmissionRate: 0.62, AvgGPA: 3.25,
			TuitionInState: 35680, TuitionOutOfState: 35680, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Wrestling"},
			Programs:           []string{"Business Administration", "Nursing", "Education", "Agriculture"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Wide Receiver (WR)", "Linebacker (LB)"},
			Facilities:         "Olsen Stadium, Lincoln Center weight facility",
			RecentSuccess:      "Multiple NAIA national championships",
		},
		{
			ID: 17, Name: "Keiser University", Division: DivisionNAIA, Conference: "Sun Conference",
			Region: "Southeast", State: "FL", City: "West Palm Beach", Public: false,
			Enrollment: 3834, AdmissionRate: 0.94, AvgGPA: 3.10,
			TuitionInState: 33120, TuitionOutOfState: 33120, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Golf"},
			Programs:           []string{"Sports Medicine", "Business Administration", "Criminal Justice", "Nursing"},
			ActivelyRecruiting: []string{"Defensive Back (DB)", "Running Back (RB)", "Defensive Lineman (DL)"},
			Facilities:         "Keiser Stadium, South Florida training climate",
			RecentSuccess:      "NAIA national title and Sun Conference dominance",
		},
		{
			ID: 18, Name: "Northwestern College (Iowa)", Division: DivisionNAIA, Conference: "GPAC",
			Region: "Midwest", State: "IA", City: "Orange City", Public: false,
			Enrollment: 1563, AdmissionRate: 0.72, AvgGPA: 3.30,
			TuitionInState: 33900, TuitionOutOfState: 33900, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Soccer"},
			Programs:           []string{"Education", "Business Administration", "Exercise Science", "Biology"},
			ActivelyRecruiting: []string{"Tight End (TE)", "Linebacker (LB)", "Kicker (K)"},
			Facilities:         "De Valois Stadium, Juhl athletic complex",
		},
		{
			ID: 19, Name: "East Mississippi Community College", Division: DivisionJUCO, Conference: "MACJC",
			Region: "Southeast", State: "MS", City: "Scooba", Public: true,
			Enrollment: 4000, AdmissionRate: 0, AvgGPA: 0,
			TuitionInState: 3610, TuitionOutOfState: 6310, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Baseball"},
			Programs:           []string{"General Studies", "Business", "Welding Technology", "Criminal Justice"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Defensive Lineman (DL)", "Wide Receiver (WR)"},
			Facilities:         "Sullivan-Windham Field, nationally known development program",
			RecentSuccess:      "Multiple NJCAA national championships and D1 transfer pipeline",
		},
		{
			ID: 20, Name: "Iowa Western Community College", Division: DivisionJUCO, Conference: "ICCAC",
			Region: "Midwest", State: "IA", City: "Council Bluffs", Public: true,
			Enrollment: 6873, AdmissionRate: 0, AvgGPA: 0,
			TuitionInState: 7680, TuitionOutOfState: 7920, AthleticScholarships: true,
			Sports:             []string{"Football", "Soccer", "Volleyball"},
			Programs:           []string{"General Studies", "Business", "Exercise Science", "Agriculture"},
			ActivelyRecruiting: []string{"Offensive Lineman (OL)", "Cornerback (CB)", "Running Back (RB)"},
			Facilities:         "Titan Stadium, strong transfer placement record",
			RecentSuccess:      "NJCAA national championship and top-five finishes",
		},
		{
			ID: 21, Name: "Garden City Community College", Division: DivisionJUCO, Conference: "KJCCC",
			Region: "Midwest", State: "KS", City: "Garden City", Public: true,
			Enrollment: 2000, AdmissionRate: 0, AvgGPA: 0,
			TuitionInState: 2624, TuitionOutOfState: 3072, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Track & Field"},
			Programs:           []string{"General Studies", "Business", "Criminal Justice", "Animal Science"},
			ActivelyRecruiting: []string{"Linebacker (LB)", "Safety (S)", "Defensive Lineman (DL)"},
			Facilities:         "Broncbuster Stadium",
		},
		{
			ID: 22, Name: "University of Georgia", Division: DivisionD1, Conference: "SEC",
			Region: "Southeast", State: "GA", City: "Athens", Public: true,
			Enrollment: 40607, AdmissionRate: 0.42, AvgGPA: 3.85,
			TuitionInState: 11440, TuitionOutOfState: 31120, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Gymnastics", "Tennis"},
			Programs:           []string{"Business Administration", "Biology", "Journalism", "Sport Management", "Engineering"},
			ActivelyRecruiting: []string{"Defensive Lineman (DL)", "Linebacker (LB)", "Tight End (TE)"},
			Facilities:         "Sanford Stadium, Payne Indoor Athletic Facility",
			RecentSuccess:      "Back-to-back national championships",
		},
		{
			ID: 23, Name: "Colorado School of Mines", Division: DivisionD2, Conference: "RMAC",
			Region: "West", State: "CO", City: "Golden", Public: true,
			Enrollment: 7622, AdmissionRate: 0.58, AvgGPA: 3.78,
			TuitionInState: 20106, TuitionOutOfState: 42120, AthleticScholarships: true,
			Sports:             []string{"Football", "Basketball", "Soccer"},
			Programs:           []string{"Engineering", "Computer Science", "Applied Mathematics", "Geophysics"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Wide Receiver (WR)", "Offensive Lineman (OL)"},
			Facilities:         "Marv Kay Stadium, new stadium complex",
			RecentSuccess:      "D2 semifinal runs with a top engineering school",
		},
		{
			ID: 24, Name: "Dartmouth College", Division: DivisionD1, Conference: "Ivy League",
			Region: "Northeast", State: "NH", City: "Hanover", Public: false,
			Enrollment: 6761, AdmissionRate: 0.06, AvgGPA: 3.94,
			TuitionInState: 62430, TuitionOutOfState: 62430, AthleticScholarships: false,
			Sports:             []string{"Football", "Hockey", "Crew", "Skiing"},
			Programs:           []string{"Economics", "Government", "Computer Science", "Engineering Sciences", "Biology"},
			ActivelyRecruiting: []string{"Quarterback (QB)", "Linebacker (LB)", "Safety (S)"},
			Facilities:         "Memorial Field, Floren Varsity House",
			RecentSuccess:      "Ivy League championships",
		},
	}
}
