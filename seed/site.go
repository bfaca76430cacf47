package seed

import "encoding/json"

// PageSeed is one page in the site definition, listed with the sections it
// owns. Pages must be declared parents-first; Reseed validates this.
type PageSeed struct {
	ID         string
	Name       string
	Path       string
	ParentID   string // empty = top-level
	Position   int
	IsActive   bool
	ShowInMenu bool
	Sections   []SectionSeed
}

// SectionSeed is one content section. ID carries the locale suffix by
// convention (<slug>_en / <slug>_bg).
type SectionSeed struct {
	ID       string
	Type     string
	Label    string
	Content  string
	Position int
}

// StaffSeed is one staff record for the incremental sync
type StaffSeed struct {
	Name       string
	Role       string
	Email      string
	Phone      string
	Bio        string
	ImageURL   string
	IsDirector bool
	Position   int
}

// Site is the full seed definition
type Site struct {
	Pages []PageSeed
	Staff []StaffSeed
}

// list serializes items the way list-typed sections store their payload
func list(items ...string) string {
	b, _ := json.Marshal(items)
	return string(b)
}

// DefaultSite returns the bilingual school site definition. The "global"
// page holds header and footer content shared across pages.
func DefaultSite() Site {
	return Site{
		Pages: []PageSeed{
			{
				ID: "global", Name: "Global", Path: "/", Position: 0, IsActive: true, ShowInMenu: false,
				Sections: []SectionSeed{
					{ID: "site-name_en", Type: "text", Label: "Site name", Content: "St. Kliment Ohridski School", Position: 0},
					{ID: "site-name_bg", Type: "text", Label: "Site name", Content: "Училище „Св. Климент Охридски“", Position: 0},
					{ID: "footer-address_en", Type: "text", Label: "Footer address", Content: "12 Vasil Levski Blvd, Sofia 1000", Position: 1},
					{ID: "footer-address_bg", Type: "text", Label: "Footer address", Content: "бул. „Васил Левски“ 12, София 1000", Position: 1},
					{ID: "footer-phone_en", Type: "text", Label: "Footer phone", Content: "+359 2 987 6543", Position: 2},
					{ID: "footer-phone_bg", Type: "text", Label: "Footer phone", Content: "+359 2 987 6543", Position: 2},
				},
			},
			{
				ID: "home", Name: "Home", Path: "/", Position: 1, IsActive: true, ShowInMenu: true,
				Sections: []SectionSeed{
					{ID: "hero-title_en", Type: "text", Label: "Hero title", Content: "Welcome to our school", Position: 0},
					{ID: "hero-title_bg", Type: "text", Label: "Hero title", Content: "Добре дошли в нашето училище", Position: 0},
					{ID: "hero-subtitle_en", Type: "text", Label: "Hero subtitle", Content: "Learning for life since 1964", Position: 1},
					{ID: "hero-subtitle_bg", Type: "text", Label: "Hero subtitle", Content: "Учим за живота от 1964 г.", Position: 1},
					{ID: "hero-image_en", Type: "image", Label: "Hero image", Content: "/images/school-front.jpg", Position: 2},
					{ID: "hero-image_bg", Type: "image", Label: "Hero image", Content: "/images/school-front.jpg", Position: 2},
					{ID: "highlights_en", Type: "list", Label: "Home highlights", Content: list("Modern classrooms", "Language programs", "Sports facilities"), Position: 3},
					{ID: "highlights_bg", Type: "list", Label: "Home highlights", Content: list("Модерни класни стаи", "Езикови програми", "Спортна база"), Position: 3},
				},
			},
			{
				ID: "about", Name: "About us", Path: "/about", Position: 2, IsActive: true, ShowInMenu: true,
				Sections: []SectionSeed{
					{ID: "about-intro_en", Type: "text", Label: "About introduction", Content: "Our school has served the community for six decades, combining tradition with a modern curriculum.", Position: 0},
					{ID: "about-intro_bg", Type: "text", Label: "About introduction", Content: "Нашето училище служи на общността вече шест десетилетия, съчетавайки традиция и модерна програма.", Position: 0},
					{ID: "about-values_en", Type: "list", Label: "School values", Content: list("Respect", "Curiosity", "Responsibility"), Position: 1},
					{ID: "about-values_bg", Type: "list", Label: "School values", Content: list("Уважение", "Любознателност", "Отговорност"), Position: 1},
				},
			},
			{
				ID: "history", Name: "History", Path: "/about/history", ParentID: "about", Position: 0, IsActive: true, ShowInMenu: true,
				Sections: []SectionSeed{
					{ID: "history-body_en", Type: "text", Label: "History text", Content: "Founded in 1964, the school opened with four classrooms and sixty students.", Position: 0},
					{ID: "history-body_bg", Type: "text", Label: "History text", Content: "Основано през 1964 г., училището отваря врати с четири класни стаи и шестдесет ученици.", Position: 0},
				},
			},
			{
				ID: "admissions", Name: "Admissions", Path: "/admissions", Position: 3, IsActive: true, ShowInMenu: true,
				Sections: []SectionSeed{
					{ID: "admissions-intro_en", Type: "text", Label: "Admissions introduction", Content: "Applications for the coming school year open every March.", Position: 0},
					{ID: "admissions-intro_bg", Type: "text", Label: "Admissions introduction", Content: "Приемът за предстоящата учебна година започва всяка година през март.", Position: 0},
					{ID: "admissions-steps_en", Type: "list", Label: "Admission steps", Content: list("Submit application form", "Entrance interview", "Enrollment confirmation"), Position: 1},
					{ID: "admissions-steps_bg", Type: "list", Label: "Admission steps", Content: list("Подаване на заявление", "Събеседване", "Потвърждаване на записването"), Position: 1},
				},
			},
			{
				ID: "team", Name: "Our team", Path: "/team", Position: 4, IsActive: true, ShowInMenu: true,
				Sections: []SectionSeed{
					{ID: "team-intro_en", Type: "text", Label: "Team introduction", Content: "Meet the teachers and staff who make our school what it is.", Position: 0},
					{ID: "team-intro_bg", Type: "text", Label: "Team introduction", Content: "Запознайте се с учителите и екипа, които правят нашето училище такова, каквото е.", Position: 0},
				},
			},
			{
				ID: "contacts", Name: "Contacts", Path: "/contacts", Position: 5, IsActive: true, ShowInMenu: true,
				Sections: []SectionSeed{
					{ID: "contacts-intro_en", Type: "text", Label: "Contacts introduction", Content: "We are happy to answer your questions.", Position: 0},
					{ID: "contacts-intro_bg", Type: "text", Label: "Contacts introduction", Content: "С радост ще отговорим на вашите въпроси.", Position: 0},
					{ID: "contacts-email_en", Type: "text", Label: "Contact email", Content: "office@ohridski-school.bg", Position: 1},
					{ID: "contacts-email_bg", Type: "text", Label: "Contact email", Content: "office@ohridski-school.bg", Position: 1},
					{ID: "contacts-map_en", Type: "image", Label: "Map image", Content: "/images/map.png", Position: 2},
					{ID: "contacts-map_bg", Type: "image", Label: "Map image", Content: "/images/map.png", Position: 2},
				},
			},
		},
		Staff: []StaffSeed{
			{Name: "Elena Petrova", Role: "Principal", Email: "e.petrova@ohridski-school.bg", Phone: "+359 2 987 6501", Bio: "Principal since 2015, mathematics teacher by training.", ImageURL: "/images/staff/petrova.jpg", IsDirector: true, Position: 0},
			{Name: "Georgi Dimitrov", Role: "Deputy Principal", Email: "g.dimitrov@ohridski-school.bg", Phone: "+359 2 987 6502", Bio: "Oversees curriculum and student affairs.", ImageURL: "/images/staff/dimitrov.jpg", IsDirector: true, Position: 1},
			{Name: "Maria Ivanova", Role: "English Teacher", Email: "m.ivanova@ohridski-school.bg", Bio: "Teaches English to grades 5 through 12.", ImageURL: "/images/staff/ivanova.jpg", Position: 0},
			{Name: "Stefan Kolev", Role: "Physics Teacher", Email: "s.kolev@ohridski-school.bg", Bio: "Runs the school robotics club.", ImageURL: "/images/staff/kolev.jpg", Position: 1},
			{Name: "Nadezhda Georgieva", Role: "Primary School Teacher", Email: "n.georgieva@ohridski-school.bg", Bio: "Class teacher for the second grade.", ImageURL: "/images/staff/georgieva.jpg", Position: 2},
		},
	}
}
