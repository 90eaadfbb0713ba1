package memory

import (
	"time"

	"dreamcrm/internal/domain/entity"
)

// Fixture returns the demo dataset the dashboard ships with: four users,
// five properties, five deals, four leads, four documents, five reminders,
// four calls and five emails, all cross-referencing each other by id.
func Fixture() Dataset {
	return Dataset{
		Users: []*entity.User{
			{ID: "user-1", Name: "Admin Ali", Email: "admin@dream.ae", Role: entity.RoleAdmin, LastLogin: ts("2024-07-28T10:00:00Z"), Avatar: "https://picsum.photos/seed/user1/100/100"},
			{ID: "user-2", Name: "Agent Ahmed", Email: "ahmed@dream.ae", Role: entity.RoleAgent, LastLogin: ts("2024-07-28T12:30:00Z"), Avatar: "https://picsum.photos/seed/user2/100/100"},
			{ID: "user-3", Name: "Agent Fatima", Email: "fatima@dream.ae", Role: entity.RoleAgent, LastLogin: ts("2024-07-27T18:45:00Z"), Avatar: "https://picsum.photos/seed/user3/100/100"},
			{ID: "user-4", Name: "Client Omar", Email: "omar@client.com", Role: entity.RoleViewer, LastLogin: ts("2024-07-26T09:15:00Z"), Avatar: "https://picsum.photos/seed/user4/100/100"},
		},
		Properties: []*entity.Property{
			{ID: "prop-1", Title: "Luxury Marina Apartment", Location: "Dubai Marina", PriceAED: 3500000, Type: entity.PropertyApartment, Status: entity.PropertyAvailable, AgentID: "user-2", ImageURL: "https://picsum.photos/seed/prop1/400/300", Bedrooms: 2, Bathrooms: 3, AreaSqFt: 1500},
			{ID: "prop-2", Title: "Spacious Downtown Villa", Location: "Downtown Dubai", PriceAED: 12000000, Type: entity.PropertyVilla, Status: entity.PropertySold, AgentID: "user-3", ImageURL: "https://picsum.photos/seed/prop2/400/300", Bedrooms: 5, Bathrooms: 6, AreaSqFt: 6000},
			{ID: "prop-3", Title: "Modern JLT Office Space", Location: "JLT", PriceAED: 2000000, Type: entity.PropertyCommercial, Status: entity.PropertyRented, AgentID: "user-2", ImageURL: "https://picsum.photos/seed/prop3/400/300", Bedrooms: 0, Bathrooms: 2, AreaSqFt: 2500},
			{ID: "prop-4", Title: "Exclusive Palm Jumeirah Villa", Location: "Palm Jumeirah", PriceAED: 25000000, Type: entity.PropertyVilla, Status: entity.PropertyAvailable, AgentID: "user-3", ImageURL: "https://picsum.photos/seed/prop4/400/300", Bedrooms: 6, Bathrooms: 7, AreaSqFt: 8000},
			{ID: "prop-5", Title: "Chic City Walk Apartment", Location: "City Walk", PriceAED: 2800000, Type: entity.PropertyApartment, Status: entity.PropertyAvailable, AgentID: "user-2", ImageURL: "https://picsum.photos/seed/prop5/400/300", Bedrooms: 1, Bathrooms: 2, AreaSqFt: 900},
		},
		Deals: []*entity.Deal{
			{ID: "deal-1", PropertyID: "prop-2", AgentID: "user-3", ClientID: "client-1", Stage: entity.DealClosed, ValueAED: 12000000, CommissionRate: 0.02, CloseDate: day("2024-06-15")},
			{ID: "deal-2", PropertyID: "prop-1", AgentID: "user-2", ClientID: "client-2", Stage: entity.DealNegotiation, ValueAED: 3500000, CommissionRate: 0.02, CloseDate: day("2024-08-10")},
			{ID: "deal-3", PropertyID: "prop-4", AgentID: "user-3", ClientID: "client-3", Stage: entity.DealOffer, ValueAED: 25000000, CommissionRate: 0.015, CloseDate: day("2024-08-20")},
			{ID: "deal-4", PropertyID: "prop-3", AgentID: "user-2", ClientID: "client-4", Stage: entity.DealClosed, ValueAED: 2000000, CommissionRate: 0.05, CloseDate: day("2024-05-20")}, // rental
			{ID: "deal-5", PropertyID: "prop-5", AgentID: "user-3", ClientID: "client-5", Stage: entity.DealClosed, ValueAED: 2800000, CommissionRate: 0.02, CloseDate: day("2024-07-22")},
		},
		Leads: []*entity.Lead{
			{ID: "lead-1", Name: "Hassan Iqbal", Email: "hassan@example.com", Phone: "+971 50 123 4567", Source: "Website", Status: entity.LeadNew, AgentID: "user-2", CreatedAt: ts("2024-07-28T09:00:00Z")},
			{ID: "lead-2", Name: "Sara Khan", Email: "sara@example.com", Phone: "+971 55 987 6543", Source: "Referral", Status: entity.LeadContacted, AgentID: "user-3", CreatedAt: ts("2024-07-27T14:00:00Z")},
			{ID: "lead-3", Name: "Khalid Ahmed", Email: "khalid@example.com", Phone: "+971 52 555 8888", Source: "Walk-in", Status: entity.LeadQualified, AgentID: "user-2", CreatedAt: ts("2024-07-25T11:30:00Z")},
			{ID: "lead-4", Name: "Noura Salim", Email: "noura@example.com", Phone: "+971 56 222 3333", Source: "Website", Status: entity.LeadLost, AgentID: "user-3", CreatedAt: ts("2024-07-26T16:20:00Z")},
		},
		Documents: []*entity.Document{
			{ID: "doc-1", Name: "Prop-1_TitleDeed.pdf", Type: entity.DocumentPDF, SizeKB: 1200, UploadDate: day("2024-07-20"), UploadedByID: "user-2", RelatedToID: "prop-1"},
			{ID: "doc-2", Name: "Deal-1_MOU.docx", Type: entity.DocumentDOCX, SizeKB: 250, UploadDate: day("2024-06-10"), UploadedByID: "user-3", RelatedToID: "deal-1"},
			{ID: "doc-3", Name: "Palm_Villa_Brochure.pdf", Type: entity.DocumentPDF, SizeKB: 5600, UploadDate: day("2024-07-15"), UploadedByID: "user-3", RelatedToID: "prop-4"},
			{ID: "doc-4", Name: "Client_Passport.jpg", Type: entity.DocumentJPG, SizeKB: 850, UploadDate: day("2024-06-11"), UploadedByID: "user-3", RelatedToID: "deal-1"},
		},
		Reminders: []*entity.Reminder{
			{ID: "rem-1", Title: "Follow up with Sara Khan", DueDate: day("2024-07-30"), RelatedTo: "Lead: Sara Khan", IsCompleted: false, AgentID: "user-3"},
			{ID: "rem-2", Title: "Send offer for Marina Apt", DueDate: day("2024-07-29"), RelatedTo: "Deal: prop-1", IsCompleted: false, AgentID: "user-2"},
			{ID: "rem-3", Title: "Call Khalid Ahmed re: viewing", DueDate: day("2024-07-28"), RelatedTo: "Lead: Khalid Ahmed", IsCompleted: true, AgentID: "user-2"},
			{ID: "rem-4", Title: "Prepare docs for Palm Villa", DueDate: day("2024-08-01"), RelatedTo: "Deal: prop-4", IsCompleted: false, AgentID: "user-3"},
			{ID: "rem-5", Title: "Schedule meeting with Hassan", DueDate: day("2024-07-28"), RelatedTo: "Lead: Hassan Iqbal", IsCompleted: false, AgentID: "user-2"},
		},
		Calls: []*entity.Call{
			{ID: "call-1", ClientName: "Sara Khan", AgentID: "user-3", DateTime: ts("2024-07-28T10:05:00Z"), Outcome: entity.CallSuccessful, Notes: "Discussed Marina property, client is very interested. Scheduled a viewing for tomorrow at 2 PM."},
			{ID: "call-2", ClientName: "Hassan Iqbal", AgentID: "user-2", DateTime: ts("2024-07-28T11:30:00Z"), Outcome: entity.CallVoicemail, Notes: "Left a voicemail to introduce myself and follow up on the website inquiry."},
			{ID: "call-3", ClientName: "Potential Buyer X", AgentID: "user-3", DateTime: ts("2024-07-27T15:00:00Z"), Outcome: entity.CallNoAnswer, Notes: "Tried calling regarding the Downtown Villa inquiry, no answer."},
			{ID: "call-4", ClientName: "Khalid Ahmed", AgentID: "user-2", DateTime: ts("2024-07-27T09:45:00Z"), Outcome: entity.CallSuccessful, Notes: "Confirmed viewing appointment for the JLT office space. Client seems qualified."},
		},
		Emails: []*entity.Email{
			{ID: "email-1", From: "Sara Khan", To: "Agent Fatima", Subject: "Re: Viewing Appointment for Marina Apartment", Body: "Hi Fatima, \n\nConfirming the viewing for tomorrow at 2 PM. Looking forward to it! \n\nBest, \nSara", Date: ts("2024-07-28T14:30:00Z"), IsRead: false, Folder: entity.FolderInbox},
			{ID: "email-2", From: "Agent Ahmed", To: "Hassan Iqbal", Subject: "Following up on your inquiry", Body: "Dear Hassan, \n\nThank you for your interest in our properties. I tried calling you earlier. Please let me know a good time to connect. \n\nRegards, \nAhmed", Date: ts("2024-07-28T12:00:00Z"), IsRead: true, Folder: entity.FolderSent},
			{ID: "email-3", From: "Marketing Team", To: "Me", Subject: "New Luxury Villa Launch on Palm Jumeirah!", Body: "Don't miss out on our latest exclusive listing. A stunning 6-bedroom villa on the Palm with private beach access. Contact us for a private viewing.", Date: ts("2024-07-27T18:00:00Z"), IsRead: true, Folder: entity.FolderInbox},
			{ID: "email-4", From: "Agent Fatima", To: "Client Omar", Subject: "Documents for Downtown Villa", Body: "Hi Omar, \n\nPlease find attached the necessary documents for the Downtown Villa deal. Let me know if you have any questions. \n\nThanks, \nFatima", Date: ts("2024-07-26T10:15:00Z"), IsRead: true, Folder: entity.FolderSent},
			{ID: "email-5", From: "Noura Salim", To: "Agent Fatima", Subject: "Update on property search", Body: "Hi Fatima, \n\nThank you for the options. Unfortunately, they are a bit out of my budget. I will have to hold off on my search for now. \n\nBest, \nNoura", Date: ts("2024-07-29T09:00:00Z"), IsRead: false, Folder: entity.FolderInbox},
		},
	}
}

// ts parses an RFC 3339 timestamp. Fixture data only; panics on typos.
func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}

	return t
}

// day parses a calendar date as midnight UTC.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}
