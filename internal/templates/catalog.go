package templates

// catalog lists every definition in display order.
var catalog = []Definition{
	offerLetter,
	interviewInvitation,
	rejectionFeedback,
	paymentBalanceStatement,
}

var signatoryTokens = []Token{
	{Path: "staff.fullName", Label: "Name of the signing staff member"},
	{Path: "staff.title", Label: "Job title of the signing staff member"},
	{Path: "staff.email", Label: "Contact email for replies"},
	{Path: "staff.phone", Label: "Contact phone number", Optional: true},
}

var signatorySection = Section{
	Paragraphs: []string{
		"Yours sincerely,",
		"{{staff.fullName}}",
		"{{staff.title}}",
		"{{staff.email}}",
		"{{staff.phone}}",
	},
}

var offerLetter = Definition{
	ID:          OfferLetter,
	Name:        "Offer Letter",
	Description: "Formal offer of admission with the programme start date, response deadline and orientation details.",
	Tokens: append([]Token{
		{Path: "student.fullName", Label: "Applicant full name"},
		{Path: "application.programName", Label: "Programme offered"},
		{Path: "application.intake", Label: "Intake, e.g. January 2026"},
		{Path: "application.startDate", Label: "Programme start date"},
		{Path: "application.responseDeadline", Label: "Date by which the applicant must accept"},
		{Path: "application.referenceNumber", Label: "Application reference number"},
		{Path: "application.orientationDate", Label: "Orientation day"},
		{Path: "application.conditions", Label: "Conditions attached to the offer", Optional: true},
	}, signatoryTokens...),
	Sections: []Section{
		{
			Heading: "Offer of Admission",
			Paragraphs: []string{
				"Reference: {{application.referenceNumber}}",
				"Dear {{student.fullName}},",
				"We are pleased to offer you a place on the {{application.programName}} programme for the {{application.intake}} intake. Classes begin on {{application.startDate}}.",
				"Please confirm your acceptance by {{application.responseDeadline}}. Offers not accepted by this date may be released to other applicants.",
			},
		},
		{
			Heading: "Next steps",
			Bullets: []string{
				"Confirm your acceptance before {{application.responseDeadline}}.",
				"Attend orientation on {{application.orientationDate}}.",
				"Bring a copy of this letter and your identity document on your first day.",
			},
			BulletTokens: []BulletToken{
				{Token: "application.conditions", ItemTemplate: "Condition: {{item}}"},
			},
		},
		{
			Paragraphs: []string{
				"Congratulations once again. We look forward to welcoming you.",
			},
		},
		signatorySection,
	},
}

var interviewInvitation = Definition{
	ID:          InterviewInvitation,
	Name:        "Interview Invitation",
	Description: "Invitation to an admissions interview with date, time, venue and documents to bring.",
	Tokens: append([]Token{
		{Path: "student.fullName", Label: "Applicant full name"},
		{Path: "application.programName", Label: "Programme applied for"},
		{Path: "application.referenceNumber", Label: "Application reference number"},
		{Path: "application.interviewDate", Label: "Interview date"},
		{Path: "application.interviewTime", Label: "Interview time"},
		{Path: "application.interviewLocation", Label: "Interview venue"},
		{Path: "application.requiredDocuments", Label: "Documents to bring", Optional: true},
	}, signatoryTokens...),
	Sections: []Section{
		{
			Heading: "Invitation to Interview",
			Paragraphs: []string{
				"Reference: {{application.referenceNumber}}",
				"Dear {{student.fullName}},",
				"Thank you for applying to the {{application.programName}} programme. We are pleased to invite you to an interview with the admissions panel.",
			},
		},
		{
			Heading: "Interview details",
			Bullets: []string{
				"Date: {{application.interviewDate}}",
				"Time: {{application.interviewTime}}",
				"Venue: {{application.interviewLocation}}",
			},
		},
		{
			Heading: "What to bring",
			Bullets: []string{
				"Your national identity card or passport.",
			},
			BulletTokens: []BulletToken{
				{Token: "application.requiredDocuments"},
			},
		},
		{
			Paragraphs: []string{
				"Please arrive fifteen minutes early. If you cannot attend, contact us before {{application.interviewDate}} to arrange another time.",
			},
		},
		signatorySection,
	},
}

var rejectionFeedback = Definition{
	ID:          RejectionFeedback,
	Name:        "Application Outcome and Feedback",
	Description: "Unsuccessful application outcome with optional feedback on strengths and areas to improve.",
	Tokens: append([]Token{
		{Path: "student.fullName", Label: "Applicant full name"},
		{Path: "application.programName", Label: "Programme applied for"},
		{Path: "application.referenceNumber", Label: "Application reference number"},
		{Path: "feedback.summary", Label: "Summary of the panel decision", Optional: true},
		{Path: "feedback.strengths", Label: "Strengths noted by the panel", Optional: true},
		{Path: "feedback.improvements", Label: "Areas to strengthen", Optional: true},
		{Path: "feedback.nextSteps", Label: "Suggested next steps", Optional: true},
	}, signatoryTokens...),
	Sections: []Section{
		{
			Heading: "Outcome of your application",
			Paragraphs: []string{
				"Reference: {{application.referenceNumber}}",
				"Dear {{student.fullName}},",
				"Thank you for your interest in the {{application.programName}} programme. After careful review, we are unable to offer you a place in this intake.",
				"{{feedback.summary}}",
			},
		},
		{
			Heading: "Strengths we noted",
			BulletTokens: []BulletToken{
				{Token: "feedback.strengths"},
			},
		},
		{
			Heading: "Areas to strengthen",
			BulletTokens: []BulletToken{
				{Token: "feedback.improvements"},
			},
		},
		{
			Heading: "Next steps",
			Paragraphs: []string{
				"{{feedback.nextSteps}}",
				"You are welcome to apply again in a future intake. We wish you every success.",
			},
		},
		signatorySection,
	},
}

var paymentBalanceStatement = Definition{
	ID:          PaymentBalanceStatement,
	Name:        "Payment Balance Statement",
	Description: "Statement of fees, payments received and the outstanding balance with its due date.",
	Tokens: append([]Token{
		{Path: "student.fullName", Label: "Student full name"},
		{Path: "application.programName", Label: "Programme enrolled on"},
		{Path: "application.referenceNumber", Label: "Application reference number"},
		{Path: "payment.statementDate", Label: "Date of the statement"},
		{Path: "payment.currency", Label: "Currency code, e.g. ZMW"},
		{Path: "payment.totalFees", Label: "Total fees charged"},
		{Path: "payment.amountPaid", Label: "Total paid to date"},
		{Path: "payment.amountDue", Label: "Outstanding balance"},
		{Path: "payment.dueDate", Label: "Date the balance is due"},
		{Path: "payment.breakdown", Label: "Itemised charges with label and amount", Optional: true},
		{Path: "payment.instructions", Label: "How to pay", Optional: true},
	}, signatoryTokens...),
	Sections: []Section{
		{
			Heading: "Statement of Account",
			Paragraphs: []string{
				"Statement date: {{payment.statementDate}}",
				"Reference: {{application.referenceNumber}}",
				"Dear {{student.fullName}},",
				"This statement summarises the fees for the {{application.programName}} programme and the payments received to date.",
			},
		},
		{
			Heading: "Summary",
			Bullets: []string{
				"Total fees: {{payment.currency}} {{payment.totalFees}}",
				"Amount paid: {{payment.currency}} {{payment.amountPaid}}",
				"Balance due: {{payment.currency}} {{payment.amountDue}}",
				"Due date: {{payment.dueDate}}",
			},
		},
		{
			Heading: "Breakdown",
			BulletTokens: []BulletToken{
				{Token: "payment.breakdown", ItemTemplate: "{{item.label}}: {{payment.currency}} {{item.amount}}"},
			},
		},
		{
			Heading: "How to pay",
			Paragraphs: []string{
				"{{payment.instructions}}",
				"Please quote your reference number {{application.referenceNumber}} with every payment.",
			},
		},
		signatorySection,
	},
}
