package store

import "github.com/hucmaggie/shipping-quote-by-zip-api/internal/models"

// usZipSeed is the built-in ZIP coordinate table covering major US cities.
// It is a subset of the USPS universe; production deployments are expected to
// load a full table into Postgres and point the service at it instead.
var usZipSeed = map[string]models.Coordinate{
	// California
	"90001": {Lat: 33.973951, Lon: -118.248405}, // Los Angeles, CA
	"90210": {Lat: 34.0901, Lon: -118.4065},     // Beverly Hills, CA
	"94105": {Lat: 37.7898, Lon: -122.3942},     // San Francisco, CA
	"92101": {Lat: 32.7157, Lon: -117.1611},     // San Diego, CA
	"95814": {Lat: 38.5816, Lon: -121.4944},     // Sacramento, CA
	"95110": {Lat: 37.3382, Lon: -121.8863},     // San Jose, CA

	// New York
	"10001": {Lat: 40.750742, Lon: -73.99653}, // New York, NY
	"10013": {Lat: 40.7182, Lon: -74.0086},    // New York, NY (Tribeca)
	"10018": {Lat: 40.7505, Lon: -73.9934},    // New York, NY (Times Square)
	"11201": {Lat: 40.6943, Lon: -73.9249},    // Brooklyn, NY

	// Illinois
	"60601": {Lat: 41.886258, Lon: -87.618844}, // Chicago, IL
	"60611": {Lat: 41.8995, Lon: -87.6272},     // Chicago, IL (Gold Coast)
	"60614": {Lat: 41.9201, Lon: -87.6538},     // Chicago, IL (Lincoln Park)

	// Texas
	"73301": {Lat: 30.267153, Lon: -97.743057}, // Austin, TX
	"77001": {Lat: 29.7604, Lon: -95.3698},     // Houston, TX
	"75201": {Lat: 32.7767, Lon: -96.7970},     // Dallas, TX
	"78201": {Lat: 29.4241, Lon: -98.4936},     // San Antonio, TX

	// Florida
	"33101": {Lat: 25.7617, Lon: -80.1918}, // Miami, FL
	"32801": {Lat: 28.5383, Lon: -81.3792}, // Orlando, FL
	"33601": {Lat: 27.9506, Lon: -82.4572}, // Tampa, FL
	"32201": {Lat: 30.3322, Lon: -81.6557}, // Jacksonville, FL

	// Georgia
	"30301": {Lat: 33.752880, Lon: -84.392708}, // Atlanta, GA
	"30309": {Lat: 33.7890, Lon: -84.3847},     // Atlanta, GA (Midtown)

	// Washington
	"98101": {Lat: 47.6062, Lon: -122.3321}, // Seattle, WA
	"98102": {Lat: 47.6062, Lon: -122.3321}, // Seattle, WA (Capitol Hill)

	// Massachusetts
	"02101": {Lat: 42.3601, Lon: -71.0589}, // Boston, MA
	"02108": {Lat: 42.3601, Lon: -71.0589}, // Boston, MA (Downtown)

	// Pennsylvania
	"19101": {Lat: 39.9526, Lon: -75.1652}, // Philadelphia, PA
	"15201": {Lat: 40.4406, Lon: -79.9959}, // Pittsburgh, PA

	// Arizona
	"85001": {Lat: 33.4484, Lon: -112.0740}, // Phoenix, AZ
	"85701": {Lat: 32.2226, Lon: -110.9747}, // Tucson, AZ

	// Colorado
	"80201": {Lat: 39.7392, Lon: -104.9903}, // Denver, CO
	"80301": {Lat: 40.0150, Lon: -105.2705}, // Boulder, CO

	// Nevada
	"89101": {Lat: 36.1699, Lon: -115.1398}, // Las Vegas, NV
	"89501": {Lat: 39.5296, Lon: -119.8138}, // Reno, NV

	// Oregon
	"97201": {Lat: 45.5152, Lon: -122.6784}, // Portland, OR

	// Utah
	"84101": {Lat: 40.7608, Lon: -111.8910}, // Salt Lake City, UT

	// New Mexico
	"87101": {Lat: 35.0844, Lon: -106.6504}, // Albuquerque, NM

	// Oklahoma
	"73101": {Lat: 35.4676, Lon: -97.5164}, // Oklahoma City, OK

	// Kansas
	"66101": {Lat: 39.1142, Lon: -94.6275}, // Kansas City, KS

	// Missouri
	"64101": {Lat: 39.0997, Lon: -94.5786}, // Kansas City, MO
	"63101": {Lat: 38.6270, Lon: -90.1994}, // St. Louis, MO

	// Arkansas
	"72201": {Lat: 34.7465, Lon: -92.2896}, // Little Rock, AR

	// Louisiana
	"70112": {Lat: 29.9511, Lon: -90.0715}, // New Orleans, LA

	// Mississippi
	"39201": {Lat: 32.2988, Lon: -90.1848}, // Jackson, MS

	// Alabama
	"35201": {Lat: 33.5186, Lon: -86.8025}, // Birmingham, AL

	// Tennessee
	"37201": {Lat: 36.1627, Lon: -86.7816}, // Nashville, TN
	"38101": {Lat: 35.1495, Lon: -90.0490}, // Memphis, TN

	// Kentucky
	"40201": {Lat: 38.2527, Lon: -85.7585}, // Louisville, KY

	// Ohio
	"43201": {Lat: 39.9612, Lon: -82.9988}, // Columbus, OH
	"44101": {Lat: 41.4993, Lon: -81.6944}, // Cleveland, OH
	"45201": {Lat: 39.1031, Lon: -84.5120}, // Cincinnati, OH

	// Indiana
	"46201": {Lat: 39.7684, Lon: -86.1581}, // Indianapolis, IN

	// Michigan
	"48201": {Lat: 42.3314, Lon: -83.0458}, // Detroit, MI

	// Wisconsin
	"53201": {Lat: 43.0389, Lon: -87.9065}, // Milwaukee, WI

	// Minnesota
	"55401": {Lat: 44.9778, Lon: -93.2650}, // Minneapolis, MN

	// Iowa
	"50301": {Lat: 41.5868, Lon: -93.6250}, // Des Moines, IA

	// Nebraska
	"68101": {Lat: 41.2565, Lon: -95.9345}, // Omaha, NE

	// North Dakota
	"58101": {Lat: 46.8772, Lon: -96.7898}, // Fargo, ND

	// South Dakota
	"57101": {Lat: 43.5446, Lon: -96.7311}, // Sioux Falls, SD

	// Montana
	"59101": {Lat: 45.7833, Lon: -108.5007}, // Billings, MT

	// Wyoming
	"82001": {Lat: 41.1390, Lon: -104.8192}, // Cheyenne, WY

	// Idaho
	"83701": {Lat: 43.6150, Lon: -116.2023}, // Boise, ID

	// Alaska
	"99501": {Lat: 61.2181, Lon: -149.9003}, // Anchorage, AK

	// Hawaii
	"96801": {Lat: 21.3099, Lon: -157.8581}, // Honolulu, HI

	// Vermont
	"05401": {Lat: 44.4759, Lon: -73.2121}, // Burlington, VT

	// New Hampshire
	"03101": {Lat: 43.1939, Lon: -71.5724}, // Manchester, NH

	// Maine
	"04101": {Lat: 43.6591, Lon: -70.2568}, // Portland, ME

	// Rhode Island
	"02901": {Lat: 41.8240, Lon: -71.4128}, // Providence, RI

	// Connecticut
	"06101": {Lat: 41.7658, Lon: -72.6734}, // Hartford, CT

	// New Jersey
	"07101": {Lat: 40.7178, Lon: -74.0431}, // Newark, NJ

	// Delaware
	"19801": {Lat: 39.7391, Lon: -75.5398}, // Wilmington, DE

	// Maryland
	"21201": {Lat: 39.2904, Lon: -76.6122}, // Baltimore, MD

	// West Virginia
	"25301": {Lat: 38.3498, Lon: -81.6326}, // Charleston, WV

	// Virginia
	"23219": {Lat: 37.5407, Lon: -77.4360}, // Richmond, VA
	"22201": {Lat: 38.8816, Lon: -77.0910}, // Arlington, VA

	// North Carolina
	"27601": {Lat: 35.7796, Lon: -78.6382}, // Raleigh, NC
	"28201": {Lat: 35.2271, Lon: -80.8431}, // Charlotte, NC

	// South Carolina
	"29201": {Lat: 34.0007, Lon: -81.0348}, // Columbia, SC
}
