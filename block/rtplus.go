package block

import "fmt"

// RTPlusContentType names the content a RadioText+ tag points into the
// current RadioText string, per table 3.1 of the RadioText+ (ODA
// application 0x4BD7) specification. Codes 54..58 are reserved and do
// not decode to a content type.
type RTPlusContentType uint8

const (
	RTPlusDummy RTPlusContentType = iota
	RTPlusTitle
	RTPlusAlbum
	RTPlusTrackNumber
	RTPlusArtist
	RTPlusComposition
	RTPlusMovement
	RTPlusConductor
	RTPlusComposer
	RTPlusBand
	RTPlusComment
	RTPlusGenre
	RTPlusNews
	RTPlusNewsLocal
	RTPlusStockMarket
	RTPlusSport
	RTPlusLottery
	RTPlusHoroscope
	RTPlusDailyDiversion
	RTPlusHealth
	RTPlusEvent
	RTPlusScene
	RTPlusCinema
	RTPlusTV
	RTPlusDateTime
	RTPlusWeather
	RTPlusTraffic
	RTPlusAlarm
	RTPlusAdvertisement
	RTPlusURL
	RTPlusOther
	RTPlusShortStationName
	RTPlusLongStationName
	RTPlusNowProgramme
	RTPlusNextProgramme
	RTPlusProgrammePart
	RTPlusProgrammeHost
	RTPlusProgrammeEditorialStaff
	RTPlusProgrammeFrequency
	RTPlusProgrammeHomepage
	RTPlusProgrammeSubchannel
	RTPlusPhoneHotline
	RTPlusPhoneStudio
	RTPlusPhoneOther
	RTPlusSMSStudio
	RTPlusSMSOther
	RTPlusEmailHotline
	RTPlusEmailStudio
	RTPlusEmailOther
	RTPlusMMSOther
	RTPlusChat
	RTPlusChatCentre
	RTPlusVoteQuestion
	RTPlusVoteCentre
	// 54..58 reserved
	_
	_
	_
	_
	_
	RTPlusPlace // 59
	RTPlusAppointment
	RTPlusIdentifier
	RTPlusPurchase
	RTPlusGetData
)

var rtPlusNames = map[RTPlusContentType]string{
	RTPlusDummy:                   "Dummy",
	RTPlusTitle:                   "Title",
	RTPlusAlbum:                   "Album",
	RTPlusTrackNumber:             "TrackNumber",
	RTPlusArtist:                  "Artist",
	RTPlusComposition:             "Composition",
	RTPlusMovement:                "Movement",
	RTPlusConductor:               "Conductor",
	RTPlusComposer:                "Composer",
	RTPlusBand:                    "Band",
	RTPlusComment:                 "Comment",
	RTPlusGenre:                   "Genre",
	RTPlusNews:                    "News",
	RTPlusNewsLocal:               "NewsLocal",
	RTPlusStockMarket:             "StockMarket",
	RTPlusSport:                   "Sport",
	RTPlusLottery:                 "Lottery",
	RTPlusHoroscope:               "Horoscope",
	RTPlusDailyDiversion:          "DailyDiversion",
	RTPlusHealth:                  "Health",
	RTPlusEvent:                   "Event",
	RTPlusScene:                   "Scene",
	RTPlusCinema:                  "Cinema",
	RTPlusTV:                      "TV",
	RTPlusDateTime:                "DateTime",
	RTPlusWeather:                 "Weather",
	RTPlusTraffic:                 "Traffic",
	RTPlusAlarm:                   "Alarm",
	RTPlusAdvertisement:           "Advertisement",
	RTPlusURL:                     "URL",
	RTPlusOther:                   "Other",
	RTPlusShortStationName:        "ShortStationName",
	RTPlusLongStationName:         "LongStationName",
	RTPlusNowProgramme:            "NowProgramme",
	RTPlusNextProgramme:           "NextProgramme",
	RTPlusProgrammePart:           "ProgrammePart",
	RTPlusProgrammeHost:           "ProgrammeHost",
	RTPlusProgrammeEditorialStaff: "ProgrammeEditorialStaff",
	RTPlusProgrammeFrequency:      "ProgrammeFrequency",
	RTPlusProgrammeHomepage:       "ProgrammeHomepage",
	RTPlusProgrammeSubchannel:     "ProgrammeSubchannel",
	RTPlusPhoneHotline:            "PhoneHotline",
	RTPlusPhoneStudio:             "PhoneStudio",
	RTPlusPhoneOther:              "PhoneOther",
	RTPlusSMSStudio:               "SMSStudio",
	RTPlusSMSOther:                "SMSOther",
	RTPlusEmailHotline:            "EmailHotline",
	RTPlusEmailStudio:             "EmailStudio",
	RTPlusEmailOther:              "EmailOther",
	RTPlusMMSOther:                "MMSOther",
	RTPlusChat:                    "Chat",
	RTPlusChatCentre:              "ChatCentre",
	RTPlusVoteQuestion:            "VoteQuestion",
	RTPlusVoteCentre:              "VoteCentre",
	RTPlusPlace:                   "Place",
	RTPlusAppointment:             "Appointment",
	RTPlusIdentifier:              "Identifier",
	RTPlusPurchase:                "Purchase",
	RTPlusGetData:                 "GetData",
}

// rtPlusReserved holds the codes the standard leaves unassigned between the
// 0..53 and 59..63 ranges.
var rtPlusReserved = map[uint8]bool{54: true, 55: true, 56: true, 57: true, 58: true}

// RTPlusContentTypeFromByte maps the 6-bit wire value of an RT+ tag to
// its content type. ok is false for the reserved range 54..58 and for
// any value above 63 (which the 6-bit field can never carry, but the
// check is kept for defense-in-depth against a caller passing an
// unmasked byte).
func RTPlusContentTypeFromByte(v uint8) (ct RTPlusContentType, ok bool) {
	if v > 63 || rtPlusReserved[v] {
		return 0, false
	}
	return RTPlusContentType(v), true
}

// String implements fmt.Stringer.
func (ct RTPlusContentType) String() string {
	if name, ok := rtPlusNames[ct]; ok {
		return name
	}
	return fmt.Sprintf("RTPlusContentType(%d)", uint8(ct))
}

// RTPlusTag is a single (content-type, span) annotation RadioText+
// attaches to a range within the current RadioText string.
type RTPlusTag struct {
	ContentType RTPlusContentType
	Start       uint8 // 0..63
	Length      uint8 // 0..63
}
