package triage

import (
	"fmt"
	"strings"

	"github.com/cyberhelp-labs/triage/internal/model"
)

// Advise returns five step guidance for a classified complaint, aligned with
// the 1930 helpline playbook. A below-gate classification gets generic
// evidence-preservation advice regardless of category.
func Advise(c model.Classification, ents model.Entities) string {
	if c.PrimaryConf < 0.5 || c.Primary == model.Uncertain {
		return "UNCERTAIN CLASSIFICATION: 1) Call 1930 Cyber Crime Helpline immediately 2) File complaint at https://cybercrime.gov.in 3) Preserve all evidence (messages, screenshots, emails) 4) Note down all transaction details 5) Visit nearest cyber police station with documents"
	}

	switch c.Primary {
	case "Financial Fraud":
		return financialAdvice(c.Subcategory, ents)
	case "Social Media Fraud":
		return socialAdvice(c.Subcategory, ents)
	}
	return "UNABLE TO CLASSIFY: 1) Call 1930 National Cyber Crime Helpline immediately for expert guidance 2) File complaint at https://cybercrime.gov.in with all available details 3) Preserve all evidence (messages, emails, screenshots, transaction details) 4) Do NOT delete any communication or evidence 5) Visit nearest cyber police station with documents and evidence"
}

func financialAdvice(sub string, ents model.Entities) string {
	switch {
	case strings.Contains(sub, "UPI"):
		return "URGENT, UPI FRAUD: 1) Call your bank immediately to freeze the transaction and block the UPI ID/beneficiary 2) Report to your UPI app (PhonePe: 080-68727374, Paytm: 0120-4456-456, GPay: report in app) 3) File online complaint at https://cybercrime.gov.in with transaction details 4) Call 1930 National Cyber Crime Helpline 5) File FIR at the nearest cyber police station with transaction screenshots and bank statement"
	case strings.Contains(sub, "Debit Card"):
		return "URGENT, DEBIT CARD FRAUD: 1) Block your debit card immediately via bank app/SMS/hotline (SBI: 1800-425-3800, HDFC: 1800-202-6161, ICICI: 1860-120-7777) 2) Report unauthorized transactions to the bank and request chargeback/reversal 3) File complaint at https://cybercrime.gov.in 4) Call the 1930 Helpline and report the fraud 5) File FIR at the cyber police station. NEVER share your card CVV/PIN/OTP with anyone"
	case strings.Contains(sub, "Credit Card"):
		return "URGENT, CREDIT CARD FRAUD: 1) Block your credit card immediately via bank app/hotline (SBI: 1800-180-1290, HDFC: 1800-202-6161, ICICI: 1860-120-7777, Axis: 1860-419-5555) 2) Dispute unauthorized transactions with the bank and request chargeback 3) File complaint at https://cybercrime.gov.in with transaction details 4) Call 1930 National Cyber Crime Helpline 5) File FIR at the nearest cyber police station with card statements. NEVER share CVV/OTP"
	case strings.Contains(sub, "Sextortion"):
		return "CRITICAL, SEXTORTION: 1) DO NOT pay any money, paying encourages further extortion 2) DO NOT delete any chats or evidence, preserve everything 3) Immediately report at https://cybercrime.gov.in (handled with complete privacy) 4) Call the 1930 helpline for guidance 5) Block the perpetrator on all platforms and file FIR. Your identity will be protected"
	case strings.Contains(sub, "Digital Arrest"):
		return "SCAM ALERT, DIGITAL ARREST: 1) Hang up immediately, no police/CBI/court conducts arrests via video call 2) DO NOT transfer any money or share bank details 3) Report the scam at https://cybercrime.gov.in 4) Call 1930 to verify if concerned, or check https://cybercrime.gov.in/DigitalArrest.aspx 5) File FIR if money was lost. Government agencies NEVER demand money via calls or video"
	case strings.Contains(sub, "Loan App"):
		return "LOAN APP FRAUD: 1) DO NOT pay any processing or insurance fees upfront, legitimate loans never require advance payment 2) Report the fraudulent app on the Google Play Store/Apple App Store 3) Lodge complaint at https://cybercrime.gov.in 4) Call the 1930 Helpline for guidance 5) If personal data leaked or harassment follows, report to Sanchar Saathi (https://sancharsaathi.gov.in) and block the lender's contact"
	case strings.Contains(sub, "Investment"):
		return "INVESTMENT FRAUD: 1) Stop all further transactions immediately 2) Report to SEBI at https://scores.sebi.gov.in (for securities) or RBI at https://cms.rbi.org.in (for banking) 3) File complaint at https://cybercrime.gov.in with platform details 4) Call the 1930 National Helpline 5) Verify whether the platform is SEBI/RBI registered at https://www.sebi.gov.in and seek legal advice for fund recovery"
	case strings.Contains(sub, "E-Commerce"):
		return "E-COMMERCE FRAUD: 1) Report the seller/listing immediately on the platform (Amazon customer service, Flipkart help center) 2) Request a full refund via platform customer care with order details 3) File complaint at https://cybercrime.gov.in 4) Call the 1930 Helpline if there is no response 5) Report to the National Consumer Helpline at 1915 or https://consumerhelpline.gov.in. Keep all screenshots and receipts"
	case strings.Contains(sub, "OLX"):
		return "OLX/CLASSIFIED ADS FRAUD: 1) Report the fraudulent seller/listing on the OLX platform immediately 2) DO NOT send advance payment without verifying the product 3) File complaint at https://cybercrime.gov.in with seller details 4) Call the 1930 Cyber Crime Helpline 5) If money was transferred, contact your bank for transaction reversal and file FIR with chat screenshots"
	case strings.Contains(sub, "Online Job"):
		return "ONLINE JOB FRAUD: 1) Stop all communication immediately, legitimate companies never ask for registration or training fees 2) DO NOT pay any fees or share bank/Aadhar details 3) Report at https://cybercrime.gov.in with job posting details 4) Call the 1930 Helpline for guidance 5) Report the fake job portal to the Ministry of Labour (https://labour.gov.in) and warn others"
	case strings.Contains(sub, "Customer Care"):
		return "FAKE CUSTOMER CARE FRAUD: 1) Hang up immediately and verify the official customer care number from the company's website only 2) Call the official number from the company website 3) Report the fake number at https://cybercrime.gov.in 4) Call the 1930 National Helpline 5) If money was lost, immediately contact your bank for transaction freeze/reversal and file FIR"
	case strings.Contains(sub, "AEPS"):
		return "AEPS/AADHAR FRAUD: 1) Report to your bank immediately to block the account and reverse the transaction 2) File a police complaint with Aadhar details and biometric fraud evidence 3) Report at https://cybercrime.gov.in 4) Call the 1930 Helpline and the UIDAI helpline at 1947 5) Lock your Aadhar biometrics at https://resident.uidai.gov.in to prevent future misuse"
	case strings.Contains(sub, "Gaming App"):
		return "GAMING APP FRAUD: 1) Stop depositing money immediately, many gaming and betting apps are illegal 2) Report the app on the Play Store/App Store for fraudulent practices 3) File complaint at https://cybercrime.gov.in 4) Call the 1930 Cyber Crime Helpline 5) If unauthorized debits occurred, contact your bank for a transaction dispute"
	case strings.Contains(sub, "E-Wallet"):
		return "E-WALLET FRAUD: 1) Immediately report to your wallet provider (PhonePe: 080-68727374, Paytm: 0120-4456-456, GPay: in-app support) 2) Freeze the wallet, change the password and enable two-factor authentication 3) File complaint at https://cybercrime.gov.in with the transaction ID 4) Call the 1930 National Helpline 5) Check the linked bank account for unauthorized access and notify the bank"
	case strings.Contains(sub, "Insurance"):
		return "INSURANCE FRAUD: 1) Verify the policy and company with IRDAI at https://www.irdai.gov.in 2) Contact the legitimate insurance company directly from their official website 3) Report the fake agent/policy at https://cybercrime.gov.in 4) Call the 1930 Helpline for guidance 5) DO NOT share policy documents, premium payments or bank details with unverified callers"
	case strings.Contains(sub, "Hotel Booking"), strings.Contains(sub, "Ticket Booking"):
		return "BOOKING FRAUD: 1) Report the fraudulent booking/agent on the platform (MakeMyTrip, Goibibo, IRCTC official website) immediately 2) Request a refund through official customer care with the booking ID 3) File complaint at https://cybercrime.gov.in 4) Call the 1930 Cyber Crime Helpline 5) Verify the booking directly with the hotel or airline on their official website"
	case strings.Contains(sub, "APK"):
		return "APK/MALICIOUS APP FRAUD: 1) Immediately uninstall the suspicious APK and do NOT install apps from unknown sources 2) Run an antivirus scan on the device 3) Change all passwords and enable two-factor authentication on banking apps 4) Report at https://cybercrime.gov.in with app details 5) Call the 1930 Helpline and monitor bank accounts for unauthorized transactions"
	case strings.Contains(sub, "Franchisee"), strings.Contains(sub, "Dealership"):
		return "FRANCHISEE/DEALERSHIP FRAUD: 1) Stop all payments immediately and verify the opportunity with the parent company directly 2) Check company registration at the Ministry of Corporate Affairs (https://www.mca.gov.in) 3) File complaint at https://cybercrime.gov.in 4) Call the 1930 Helpline 5) Report to the Economic Offences Wing and file FIR with agreements and payment receipts"
	case strings.Contains(sub, "Lottery"):
		return "LOTTERY/PRIZE FRAUD: 1) DO NOT pay any fees or taxes to claim a prize, genuine lotteries never ask for advance payment 2) Verify the lottery's authenticity, unsolicited lottery wins are almost always scams 3) Report at https://cybercrime.gov.in with lottery details 4) Call the 1930 National Helpline 5) Block the sender and warn family and friends"
	case strings.Contains(sub, "Tower"):
		return "TOWER INSTALLATION FRAUD: 1) DO NOT pay any advance fees, telecom companies do not contact individuals for tower installation 2) Verify with the telecom company's official customer care 3) Report the scam at https://cybercrime.gov.in 4) Call the 1930 Helpline 5) If money was paid, file FIR immediately and contact your bank for transaction reversal"
	case strings.Contains(sub, "Website"):
		return "FAKE WEBSITE SCAM: 1) DO NOT enter personal or banking details on suspicious websites 2) Report the phishing site to Google Safe Browsing (https://safebrowsing.google.com/safebrowsing/report_phish/) 3) File complaint at https://cybercrime.gov.in with the website URL 4) Call the 1930 Helpline 5) If credentials were shared, immediately change passwords, enable two-factor authentication and contact your bank"
	}

	if ents.Amount != "" {
		return fmt.Sprintf("FINANCIAL FRAUD DETECTED (%s): 1) Contact your bank immediately to freeze the account and block transactions 2) File a detailed complaint at https://cybercrime.gov.in with all transaction details 3) Call the 1930 National Cyber Crime Helpline for immediate assistance 4) File FIR at the nearest cyber police station 5) Preserve ALL evidence (screenshots, messages, emails, call logs, bank statements)", ents.Amount)
	}
	return "FINANCIAL FRAUD: 1) Stop all further transactions immediately 2) File complaint at https://cybercrime.gov.in with complete details 3) Call the 1930 National Cyber Crime Helpline 4) Contact your bank if money was transferred 5) File FIR at the cyber police station with all available evidence"
}

func socialAdvice(sub string, ents model.Entities) string {
	platform := ents.Platform
	if platform == "" {
		platform = "the platform"
	}

	switch {
	case strings.Contains(sub, "Fraud Call"):
		return "FRAUD CALL ALERT: 1) Block the caller's number immediately 2) Report the number to TRAI via 1909 or the Sanchar Saathi portal (https://sancharsaathi.gov.in) 3) File complaint at https://cybercrime.gov.in with caller details 4) Call 1930 if money was lost or you were threatened 5) Never share OTP, bank details or passwords over phone calls"
	case strings.Contains(sub, "Impersonation"):
		return fmt.Sprintf("IMPERSONATION FRAUD: 1) Report the impersonation account on %s immediately using the report option on the fake profile 2) Warn all your contacts about the fake account through an official channel 3) Change your password and enable two-factor authentication 4) File complaint at https://cybercrime.gov.in with fake profile screenshots 5) Call the 1930 Helpline if there is financial loss or threats, and file FIR with evidence", platform)
	case strings.Contains(sub, "Fake Account"):
		return fmt.Sprintf("FAKE ACCOUNT: 1) Report the fake account on %s using the report account feature 2) Block the account immediately 3) DO NOT send money or share personal information 4) File complaint at https://cybercrime.gov.in with account details and screenshots 5) Call the 1930 Cyber Crime Helpline if threatened or deceived", platform)
	case strings.Contains(sub, "Hack"):
		return fmt.Sprintf("ACCOUNT HACKED: 1) Immediately change the password on %s and the linked email using forgot password 2) Enable two-factor authentication 3) Log out of all devices and sessions remotely 4) Report the hack to the %s support center 5) File complaint at https://cybercrime.gov.in and call 1930 if financial loss occurred", platform, platform)
	case strings.Contains(sub, "Obscene"):
		return fmt.Sprintf("OBSCENE CONTENT: 1) Report the obscene content or morphed images to %s immediately, it is handled confidentially 2) Block the sender and DO NOT engage with them 3) File complaint at https://cybercrime.gov.in (handled with complete privacy) 4) Call the 1930 helpline for support 5) Screenshot evidence and file FIR if blackmail or threats are involved", platform)
	}
	return fmt.Sprintf("SOCIAL MEDIA FRAUD: 1) Report the suspicious account or activity to %s using the report feature 2) Block all suspicious accounts immediately 3) Change passwords and enable two-factor authentication 4) File complaint at https://cybercrime.gov.in 5) Call the 1930 National Helpline if there is financial loss or serious threats", platform)
}
