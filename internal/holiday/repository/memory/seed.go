package memory

import "hr-assistant/internal/holiday"

// seed dates are month-day pairs; the year comes from the repository.
var seed = []holiday.Holiday{
	{ID: "hol_001", Date: "01-26", Name: "Republic Day", Type: "National Holiday", Description: "Republic Day of India"},
	{ID: "hol_002", Date: "03-08", Name: "Holi", Type: "Public Holiday", Description: "Festival of Colors"},
	{ID: "hol_003", Date: "03-29", Name: "Good Friday", Type: "Public Holiday", Description: "Good Friday"},
	{ID: "hol_004", Date: "04-11", Name: "Eid ul-Fitr", Type: "Public Holiday", Description: "Eid ul-Fitr"},
	{ID: "hol_005", Date: "04-17", Name: "Ram Navami", Type: "Public Holiday", Description: "Ram Navami"},
	{ID: "hol_006", Date: "05-01", Name: "Labour Day", Type: "Public Holiday", Description: "International Workers Day"},
	{ID: "hol_007", Date: "08-15", Name: "Independence Day", Type: "National Holiday", Description: "Independence Day of India"},
	{ID: "hol_008", Date: "10-02", Name: "Gandhi Jayanti", Type: "National Holiday", Description: "Birthday of Mahatma Gandhi"},
	{ID: "hol_009", Date: "10-31", Name: "Diwali", Type: "Public Holiday", Description: "Festival of Lights"},
	{ID: "hol_010", Date: "11-15", Name: "Guru Nanak Jayanti", Type: "Public Holiday", Description: "Birthday of Guru Nanak"},
	{ID: "hol_011", Date: "12-25", Name: "Christmas", Type: "Public Holiday", Description: "Christmas Day"},
}
