package i18n

// Keys used by the backend itself. Clients use the same keys.
const (
	KeyBudgetOnTrack  = "budgetOnTrack"
	KeyBudgetCaution  = "budgetCaution"
	KeyBudgetCritical = "budgetCritical"
	KeyBudgetExceeded = "budgetExceeded"
	KeyNoBudget       = "noBudget"
	KeyNoData         = "noData"
)

var translations = map[Locale]map[string]string{
	English: {
		// Navigation
		"dashboard":  "Dashboard",
		"expenses":   "Expenses",
		"categories": "Categories",
		"budget":     "Budget",
		"profile":    "Profile",
		"logout":     "Logout",

		// Dashboard
		"totalSpent":        "Total Spent",
		"remainingBudget":   "Remaining Budget",
		"topCategory":       "Top Category",
		"recentExpenses":    "Recent Expenses",
		"monthlyOverview":   "Monthly Overview",
		"categoryBreakdown": "Category Breakdown",

		// Expenses
		"addExpense":  "Add Expense",
		"amount":      "Amount",
		"category":    "Category",
		"date":        "Date",
		"notes":       "Notes",
		"paymentMode": "Payment Mode",
		"location":    "Location",
		"save":        "Save",
		"cancel":      "Cancel",
		"edit":        "Edit",
		"delete":      "Delete",

		// Payment modes
		"cash":   "Cash",
		"upi":    "UPI",
		"credit": "Credit",
		"other":  "Other",

		// Budget
		"setBudget":       "Set Budget",
		"monthly":         "Monthly",
		"weekly":          "Weekly",
		"budgetAmount":    "Budget Amount",
		"spent":           "Spent",
		"remaining":       "Remaining",
		KeyBudgetOnTrack:  "Budget on track",
		KeyBudgetCaution:  "50% of budget used",
		KeyBudgetCritical: "80% of budget used",
		KeyBudgetExceeded: "Budget exceeded!",
		KeyNoBudget:       "No active budget",

		// Auth
		"login":         "Login",
		"signup":        "Sign Up",
		"email":         "Email",
		"password":      "Password",
		"name":          "Name",
		"phone":         "Phone Number",
		"village":       "Village/Town",
		"monthlyIncome": "Monthly Income",

		// Common
		"search":  "Search",
		"filter":  "Filter",
		"sort":    "Sort",
		"viewAll": "View All",
		KeyNoData: "No data available",
	},
	Telugu: {
		"dashboard":  "డాష్‌బోర్డ్",
		"expenses":   "ఖర్చులు",
		"categories": "వర్గాలు",
		"budget":     "బడ్జెట్",
		"profile":    "ప్రొఫైల్",
		"logout":     "లాగ్అవుట్",

		"totalSpent":        "మొత్తం ఖర్చు",
		"remainingBudget":   "మిగిలిన బడ్జెట్",
		"topCategory":       "టాప్ వర్గం",
		"recentExpenses":    "ఇటీవల ఖర్చులు",
		"monthlyOverview":   "నెలవారీ సమీక్ష",
		"categoryBreakdown": "వర్గం వారీగా",

		"addExpense":  "ఖర్చు జోడించు",
		"amount":      "మొత్తం",
		"category":    "వర్గం",
		"date":        "తేదీ",
		"notes":       "గమనికలు",
		"paymentMode": "చెల్లింపు విధానం",
		"location":    "స్థలం",
		"save":        "సేవ్ చేయి",
		"cancel":      "రద్దు చేయి",
		"edit":        "సవరించు",
		"delete":      "తొలగించు",

		"cash":   "నగదు",
		"upi":    "UPI",
		"credit": "క్రెడిట్",
		"other":  "ఇతర",

		"setBudget":       "బడ్జెట్ సెట్ చేయండి",
		"monthly":         "నెలవారీ",
		"weekly":          "వారంవారీ",
		"budgetAmount":    "బడ్జెట్ మొత్తం",
		"spent":           "ఖర్చు చేసారు",
		"remaining":       "మిగిలినది",
		KeyBudgetOnTrack:  "బడ్జెట్ సరిగ్గా ఉంది",
		KeyBudgetCaution:  "బడ్జెట్‌లో 50% ఉపయోగించారు",
		KeyBudgetCritical: "బడ్జెట్‌లో 80% ఉపయోగించారు",
		KeyBudgetExceeded: "బడ్జెట్ మించిపోయింది!",
		KeyNoBudget:       "క్రియాశీల బడ్జెట్ లేదు",

		"login":         "లాగిన్",
		"signup":        "సైన్ అప్",
		"email":         "ఇమెయిల్",
		"password":      "పాస్‌వర్డ్",
		"name":          "పేరు",
		"phone":         "ఫోన్ నంబర్",
		"village":       "గ్రామం/పట్టణం",
		"monthlyIncome": "నెలవారీ ఆదాయం",

		"search":  "వెతుకు",
		"filter":  "ఫిల్టర్",
		"sort":    "క్రమబద్ధీకరించు",
		"viewAll": "అన్నీ చూడండి",
		KeyNoData: "డేటా అందుబాటులో లేదు",
	},
	Hindi: {
		"dashboard":  "डैशबोर्ड",
		"expenses":   "खर्चे",
		"categories": "श्रेणियाँ",
		"budget":     "बजट",
		"profile":    "प्रोफ़ाइल",
		"logout":     "लॉगआउट",

		"totalSpent":        "कुल खर्च",
		"remainingBudget":   "शेष बजट",
		"topCategory":       "शीर्ष श्रेणी",
		"recentExpenses":    "हाल के खर्चे",
		"monthlyOverview":   "मासिक अवलोकन",
		"categoryBreakdown": "श्रेणी विवरण",

		"addExpense":  "खर्च जोड़ें",
		"amount":      "राशि",
		"category":    "श्रेणी",
		"date":        "तारीख",
		"notes":       "टिप्पणियाँ",
		"paymentMode": "भुगतान मोड",
		"location":    "स्थान",
		"save":        "सेव करें",
		"cancel":      "रद्द करें",
		"edit":        "संपादित करें",
		"delete":      "हटाएं",

		"cash":   "नकद",
		"upi":    "UPI",
		"credit": "क्रेडिट",
		"other":  "अन्य",

		"setBudget":       "बजट सेट करें",
		"monthly":         "मासिक",
		"weekly":          "साप्ताहिक",
		"budgetAmount":    "बजट राशि",
		"spent":           "खर्च किया",
		"remaining":       "शेष",
		KeyBudgetOnTrack:  "बजट सही दिशा में है",
		KeyBudgetCaution:  "बजट का 50% उपयोग हुआ",
		KeyBudgetCritical: "बजट का 80% उपयोग हुआ",
		KeyBudgetExceeded: "बजट पार हो गया!",
		KeyNoBudget:       "कोई सक्रिय बजट नहीं",

		"login":         "लॉगिन",
		"signup":        "साइन अप",
		"email":         "ईमेल",
		"password":      "पासवर्ड",
		"name":          "नाम",
		"phone":         "फोन नंबर",
		"village":       "गाँव/शहर",
		"monthlyIncome": "मासिक आय",

		"search":  "खोजें",
		"filter":  "फ़िल्टर",
		"sort":    "क्रमबद्ध करें",
		"viewAll": "सभी देखें",
		KeyNoData: "कोई डेटा उपलब्ध नहीं",
	},
}
